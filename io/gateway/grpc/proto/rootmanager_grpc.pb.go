// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.2.0
// - protoc             (unknown)
// source: rootmanager.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

// RootManagerClient is the client API for RootManager service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type RootManagerClient interface {
	Aggregate(ctx context.Context, in *AggregateRequest, opts ...grpc.CallOption) (*Ack, error)
	ProposeAggregateRoot(ctx context.Context, in *ProposeRequest, opts ...grpc.CallOption) (*Ack, error)
	Finalize(ctx context.Context, in *CallerRequest, opts ...grpc.CallOption) (*Ack, error)
	Propagate(ctx context.Context, in *PropagateRequest, opts ...grpc.CallOption) (*PropagateResponse, error)
	FinalizeAndPropagate(ctx context.Context, in *PropagateRequest, opts ...grpc.CallOption) (*PropagateResponse, error)
	ActivateSlowMode(ctx context.Context, in *CallerRequest, opts ...grpc.CallOption) (*Ack, error)
	ActivateOptimisticMode(ctx context.Context, in *CallerRequest, opts ...grpc.CallOption) (*Ack, error)
	AddConnector(ctx context.Context, in *AddConnectorRequest, opts ...grpc.CallOption) (*Ack, error)
	RemoveConnector(ctx context.Context, in *RemoveConnectorRequest, opts ...grpc.CallOption) (*Ack, error)
	AddProposer(ctx context.Context, in *ProposerRequest, opts ...grpc.CallOption) (*Ack, error)
	RemoveProposer(ctx context.Context, in *ProposerRequest, opts ...grpc.CallOption) (*Ack, error)
	PropagateWorkable(ctx context.Context, in *WorkableRequest, opts ...grpc.CallOption) (*Workable, error)
	ProposeWorkable(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Workable, error)
	ProcessFromRoot(ctx context.Context, in *ProcessRequest, opts ...grpc.CallOption) (*Ack, error)
	NodeInfo(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Info, error)
}

type rootManagerClient struct {
	cc grpc.ClientConnInterface
}

func NewRootManagerClient(cc grpc.ClientConnInterface) RootManagerClient {
	return &rootManagerClient{cc}
}

func (c *rootManagerClient) Aggregate(ctx context.Context, in *AggregateRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/Aggregate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) ProposeAggregateRoot(ctx context.Context, in *ProposeRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/ProposeAggregateRoot", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) Finalize(ctx context.Context, in *CallerRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/Finalize", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) Propagate(ctx context.Context, in *PropagateRequest, opts ...grpc.CallOption) (*PropagateResponse, error) {
	out := new(PropagateResponse)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/Propagate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) FinalizeAndPropagate(ctx context.Context, in *PropagateRequest, opts ...grpc.CallOption) (*PropagateResponse, error) {
	out := new(PropagateResponse)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/FinalizeAndPropagate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) ActivateSlowMode(ctx context.Context, in *CallerRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/ActivateSlowMode", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) ActivateOptimisticMode(ctx context.Context, in *CallerRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/ActivateOptimisticMode", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) AddConnector(ctx context.Context, in *AddConnectorRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/AddConnector", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) RemoveConnector(ctx context.Context, in *RemoveConnectorRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/RemoveConnector", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) AddProposer(ctx context.Context, in *ProposerRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/AddProposer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) RemoveProposer(ctx context.Context, in *ProposerRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/RemoveProposer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) PropagateWorkable(ctx context.Context, in *WorkableRequest, opts ...grpc.CallOption) (*Workable, error) {
	out := new(Workable)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/PropagateWorkable", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) ProposeWorkable(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Workable, error) {
	out := new(Workable)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/ProposeWorkable", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) ProcessFromRoot(ctx context.Context, in *ProcessRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/ProcessFromRoot", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rootManagerClient) NodeInfo(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Info, error) {
	out := new(Info)
	err := c.cc.Invoke(ctx, "/rootmanager.RootManager/NodeInfo", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RootManagerServer is the server API for RootManager service.
// All implementations must embed UnimplementedRootManagerServer
// for forward compatibility
type RootManagerServer interface {
	Aggregate(context.Context, *AggregateRequest) (*Ack, error)
	ProposeAggregateRoot(context.Context, *ProposeRequest) (*Ack, error)
	Finalize(context.Context, *CallerRequest) (*Ack, error)
	Propagate(context.Context, *PropagateRequest) (*PropagateResponse, error)
	FinalizeAndPropagate(context.Context, *PropagateRequest) (*PropagateResponse, error)
	ActivateSlowMode(context.Context, *CallerRequest) (*Ack, error)
	ActivateOptimisticMode(context.Context, *CallerRequest) (*Ack, error)
	AddConnector(context.Context, *AddConnectorRequest) (*Ack, error)
	RemoveConnector(context.Context, *RemoveConnectorRequest) (*Ack, error)
	AddProposer(context.Context, *ProposerRequest) (*Ack, error)
	RemoveProposer(context.Context, *ProposerRequest) (*Ack, error)
	PropagateWorkable(context.Context, *WorkableRequest) (*Workable, error)
	ProposeWorkable(context.Context, *Empty) (*Workable, error)
	ProcessFromRoot(context.Context, *ProcessRequest) (*Ack, error)
	NodeInfo(context.Context, *Empty) (*Info, error)
	mustEmbedUnimplementedRootManagerServer()
}

// UnimplementedRootManagerServer must be embedded to have forward compatible implementations.
type UnimplementedRootManagerServer struct {
}

func (UnimplementedRootManagerServer) Aggregate(context.Context, *AggregateRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Aggregate not implemented")
}
func (UnimplementedRootManagerServer) ProposeAggregateRoot(context.Context, *ProposeRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProposeAggregateRoot not implemented")
}
func (UnimplementedRootManagerServer) Finalize(context.Context, *CallerRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Finalize not implemented")
}
func (UnimplementedRootManagerServer) Propagate(context.Context, *PropagateRequest) (*PropagateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Propagate not implemented")
}
func (UnimplementedRootManagerServer) FinalizeAndPropagate(context.Context, *PropagateRequest) (*PropagateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinalizeAndPropagate not implemented")
}
func (UnimplementedRootManagerServer) ActivateSlowMode(context.Context, *CallerRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ActivateSlowMode not implemented")
}
func (UnimplementedRootManagerServer) ActivateOptimisticMode(context.Context, *CallerRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ActivateOptimisticMode not implemented")
}
func (UnimplementedRootManagerServer) AddConnector(context.Context, *AddConnectorRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddConnector not implemented")
}
func (UnimplementedRootManagerServer) RemoveConnector(context.Context, *RemoveConnectorRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveConnector not implemented")
}
func (UnimplementedRootManagerServer) AddProposer(context.Context, *ProposerRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddProposer not implemented")
}
func (UnimplementedRootManagerServer) RemoveProposer(context.Context, *ProposerRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveProposer not implemented")
}
func (UnimplementedRootManagerServer) PropagateWorkable(context.Context, *WorkableRequest) (*Workable, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PropagateWorkable not implemented")
}
func (UnimplementedRootManagerServer) ProposeWorkable(context.Context, *Empty) (*Workable, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProposeWorkable not implemented")
}
func (UnimplementedRootManagerServer) ProcessFromRoot(context.Context, *ProcessRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessFromRoot not implemented")
}
func (UnimplementedRootManagerServer) NodeInfo(context.Context, *Empty) (*Info, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NodeInfo not implemented")
}
func (UnimplementedRootManagerServer) mustEmbedUnimplementedRootManagerServer() {}

// UnsafeRootManagerServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RootManagerServer will
// result in compilation errors.
type UnsafeRootManagerServer interface {
	mustEmbedUnimplementedRootManagerServer()
}

func RegisterRootManagerServer(s grpc.ServiceRegistrar, srv RootManagerServer) {
	s.RegisterService(&RootManager_ServiceDesc, srv)
}

func _RootManager_Aggregate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AggregateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).Aggregate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/Aggregate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).Aggregate(ctx, req.(*AggregateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_ProposeAggregateRoot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProposeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).ProposeAggregateRoot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/ProposeAggregateRoot",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).ProposeAggregateRoot(ctx, req.(*ProposeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_Finalize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CallerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).Finalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/Finalize",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).Finalize(ctx, req.(*CallerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_Propagate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PropagateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).Propagate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/Propagate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).Propagate(ctx, req.(*PropagateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_FinalizeAndPropagate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PropagateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).FinalizeAndPropagate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/FinalizeAndPropagate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).FinalizeAndPropagate(ctx, req.(*PropagateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_ActivateSlowMode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CallerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).ActivateSlowMode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/ActivateSlowMode",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).ActivateSlowMode(ctx, req.(*CallerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_ActivateOptimisticMode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CallerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).ActivateOptimisticMode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/ActivateOptimisticMode",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).ActivateOptimisticMode(ctx, req.(*CallerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_AddConnector_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddConnectorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).AddConnector(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/AddConnector",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).AddConnector(ctx, req.(*AddConnectorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_RemoveConnector_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveConnectorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).RemoveConnector(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/RemoveConnector",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).RemoveConnector(ctx, req.(*RemoveConnectorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_AddProposer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProposerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).AddProposer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/AddProposer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).AddProposer(ctx, req.(*ProposerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_RemoveProposer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProposerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).RemoveProposer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/RemoveProposer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).RemoveProposer(ctx, req.(*ProposerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_PropagateWorkable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WorkableRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).PropagateWorkable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/PropagateWorkable",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).PropagateWorkable(ctx, req.(*WorkableRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_ProposeWorkable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).ProposeWorkable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/ProposeWorkable",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).ProposeWorkable(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_ProcessFromRoot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).ProcessFromRoot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/ProcessFromRoot",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).ProcessFromRoot(ctx, req.(*ProcessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RootManager_NodeInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RootManagerServer).NodeInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.RootManager/NodeInfo",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RootManagerServer).NodeInfo(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// RootManager_ServiceDesc is the grpc.ServiceDesc for RootManager service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RootManager_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rootmanager.RootManager",
	HandlerType: (*RootManagerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Aggregate",
			Handler:    _RootManager_Aggregate_Handler,
		},
		{
			MethodName: "ProposeAggregateRoot",
			Handler:    _RootManager_ProposeAggregateRoot_Handler,
		},
		{
			MethodName: "Finalize",
			Handler:    _RootManager_Finalize_Handler,
		},
		{
			MethodName: "Propagate",
			Handler:    _RootManager_Propagate_Handler,
		},
		{
			MethodName: "FinalizeAndPropagate",
			Handler:    _RootManager_FinalizeAndPropagate_Handler,
		},
		{
			MethodName: "ActivateSlowMode",
			Handler:    _RootManager_ActivateSlowMode_Handler,
		},
		{
			MethodName: "ActivateOptimisticMode",
			Handler:    _RootManager_ActivateOptimisticMode_Handler,
		},
		{
			MethodName: "AddConnector",
			Handler:    _RootManager_AddConnector_Handler,
		},
		{
			MethodName: "RemoveConnector",
			Handler:    _RootManager_RemoveConnector_Handler,
		},
		{
			MethodName: "AddProposer",
			Handler:    _RootManager_AddProposer_Handler,
		},
		{
			MethodName: "RemoveProposer",
			Handler:    _RootManager_RemoveProposer_Handler,
		},
		{
			MethodName: "PropagateWorkable",
			Handler:    _RootManager_PropagateWorkable_Handler,
		},
		{
			MethodName: "ProposeWorkable",
			Handler:    _RootManager_ProposeWorkable_Handler,
		},
		{
			MethodName: "ProcessFromRoot",
			Handler:    _RootManager_ProcessFromRoot_Handler,
		},
		{
			MethodName: "NodeInfo",
			Handler:    _RootManager_NodeInfo_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rootmanager.proto",
}

// HubConnectorClient is the client API for HubConnector service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type HubConnectorClient interface {
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*Ack, error)
}

type hubConnectorClient struct {
	cc grpc.ClientConnInterface
}

func NewHubConnectorClient(cc grpc.ClientConnInterface) HubConnectorClient {
	return &hubConnectorClient{cc}
}

func (c *hubConnectorClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/rootmanager.HubConnector/SendMessage", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HubConnectorServer is the server API for HubConnector service.
// All implementations must embed UnimplementedHubConnectorServer
// for forward compatibility
type HubConnectorServer interface {
	SendMessage(context.Context, *SendMessageRequest) (*Ack, error)
	mustEmbedUnimplementedHubConnectorServer()
}

// UnimplementedHubConnectorServer must be embedded to have forward compatible implementations.
type UnimplementedHubConnectorServer struct {
}

func (UnimplementedHubConnectorServer) SendMessage(context.Context, *SendMessageRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedHubConnectorServer) mustEmbedUnimplementedHubConnectorServer() {}

// UnsafeHubConnectorServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to HubConnectorServer will
// result in compilation errors.
type UnsafeHubConnectorServer interface {
	mustEmbedUnimplementedHubConnectorServer()
}

func RegisterHubConnectorServer(s grpc.ServiceRegistrar, srv HubConnectorServer) {
	s.RegisterService(&HubConnector_ServiceDesc, srv)
}

func _HubConnector_SendMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HubConnectorServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/rootmanager.HubConnector/SendMessage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HubConnectorServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// HubConnector_ServiceDesc is the grpc.ServiceDesc for HubConnector service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var HubConnector_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rootmanager.HubConnector",
	HandlerType: (*HubConnectorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SendMessage",
			Handler:    _HubConnector_SendMessage_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rootmanager.proto",
}

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: rootmanager.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Empty struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Empty) Reset() {
	*x = Empty{}
	mi := &file_rootmanager_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Empty) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Empty) ProtoMessage() {}

func (x *Empty) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Empty.ProtoReflect.Descriptor instead.
func (*Empty) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{0}
}

type Ack struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ack) Reset() {
	*x = Ack{}
	mi := &file_rootmanager_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ack) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ack) ProtoMessage() {}

func (x *Ack) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ack.ProtoReflect.Descriptor instead.
func (*Ack) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{1}
}

type CallerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CallerRequest) Reset() {
	*x = CallerRequest{}
	mi := &file_rootmanager_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CallerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CallerRequest) ProtoMessage() {}

func (x *CallerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CallerRequest.ProtoReflect.Descriptor instead.
func (*CallerRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{2}
}

func (x *CallerRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

type AggregateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Domain        uint32                 `protobuf:"varint,2,opt,name=domain,proto3" json:"domain,omitempty"`
	InboundRoot   []byte                 `protobuf:"bytes,3,opt,name=inbound_root,json=inboundRoot,proto3" json:"inbound_root,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AggregateRequest) Reset() {
	*x = AggregateRequest{}
	mi := &file_rootmanager_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AggregateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AggregateRequest) ProtoMessage() {}

func (x *AggregateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AggregateRequest.ProtoReflect.Descriptor instead.
func (*AggregateRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{3}
}

func (x *AggregateRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *AggregateRequest) GetDomain() uint32 {
	if x != nil {
		return x.Domain
	}
	return 0
}

func (x *AggregateRequest) GetInboundRoot() []byte {
	if x != nil {
		return x.InboundRoot
	}
	return nil
}

type ProposeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	SnapshotId    uint64                 `protobuf:"varint,2,opt,name=snapshot_id,json=snapshotId,proto3" json:"snapshot_id,omitempty"`
	AggregateRoot []byte                 `protobuf:"bytes,3,opt,name=aggregate_root,json=aggregateRoot,proto3" json:"aggregate_root,omitempty"`
	SnapshotRoots [][]byte               `protobuf:"bytes,4,rep,name=snapshot_roots,json=snapshotRoots,proto3" json:"snapshot_roots,omitempty"`
	Domains       []uint32               `protobuf:"varint,5,rep,packed,name=domains,proto3" json:"domains,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProposeRequest) Reset() {
	*x = ProposeRequest{}
	mi := &file_rootmanager_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProposeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProposeRequest) ProtoMessage() {}

func (x *ProposeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProposeRequest.ProtoReflect.Descriptor instead.
func (*ProposeRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{4}
}

func (x *ProposeRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ProposeRequest) GetSnapshotId() uint64 {
	if x != nil {
		return x.SnapshotId
	}
	return 0
}

func (x *ProposeRequest) GetAggregateRoot() []byte {
	if x != nil {
		return x.AggregateRoot
	}
	return nil
}

func (x *ProposeRequest) GetSnapshotRoots() [][]byte {
	if x != nil {
		return x.SnapshotRoots
	}
	return nil
}

func (x *ProposeRequest) GetDomains() []uint32 {
	if x != nil {
		return x.Domains
	}
	return nil
}

type PropagateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Domains       []uint32               `protobuf:"varint,2,rep,packed,name=domains,proto3" json:"domains,omitempty"`
	Connectors    []string               `protobuf:"bytes,3,rep,name=connectors,proto3" json:"connectors,omitempty"`
	Fees          []uint64               `protobuf:"varint,4,rep,packed,name=fees,proto3" json:"fees,omitempty"`
	EncodedData   [][]byte               `protobuf:"bytes,5,rep,name=encoded_data,json=encodedData,proto3" json:"encoded_data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PropagateRequest) Reset() {
	*x = PropagateRequest{}
	mi := &file_rootmanager_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PropagateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PropagateRequest) ProtoMessage() {}

func (x *PropagateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PropagateRequest.ProtoReflect.Descriptor instead.
func (*PropagateRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{5}
}

func (x *PropagateRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *PropagateRequest) GetDomains() []uint32 {
	if x != nil {
		return x.Domains
	}
	return nil
}

func (x *PropagateRequest) GetConnectors() []string {
	if x != nil {
		return x.Connectors
	}
	return nil
}

func (x *PropagateRequest) GetFees() []uint64 {
	if x != nil {
		return x.Fees
	}
	return nil
}

func (x *PropagateRequest) GetEncodedData() [][]byte {
	if x != nil {
		return x.EncodedData
	}
	return nil
}

type TargetOutcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Domain        uint32                 `protobuf:"varint,1,opt,name=domain,proto3" json:"domain,omitempty"`
	Connector     string                 `protobuf:"bytes,2,opt,name=connector,proto3" json:"connector,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TargetOutcome) Reset() {
	*x = TargetOutcome{}
	mi := &file_rootmanager_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TargetOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TargetOutcome) ProtoMessage() {}

func (x *TargetOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TargetOutcome.ProtoReflect.Descriptor instead.
func (*TargetOutcome) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{6}
}

func (x *TargetOutcome) GetDomain() uint32 {
	if x != nil {
		return x.Domain
	}
	return 0
}

func (x *TargetOutcome) GetConnector() string {
	if x != nil {
		return x.Connector
	}
	return ""
}

func (x *TargetOutcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type PropagateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AggregateRoot []byte                 `protobuf:"bytes,1,opt,name=aggregate_root,json=aggregateRoot,proto3" json:"aggregate_root,omitempty"`
	Count         uint64                 `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Targets       []*TargetOutcome       `protobuf:"bytes,3,rep,name=targets,proto3" json:"targets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PropagateResponse) Reset() {
	*x = PropagateResponse{}
	mi := &file_rootmanager_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PropagateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PropagateResponse) ProtoMessage() {}

func (x *PropagateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PropagateResponse.ProtoReflect.Descriptor instead.
func (*PropagateResponse) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{7}
}

func (x *PropagateResponse) GetAggregateRoot() []byte {
	if x != nil {
		return x.AggregateRoot
	}
	return nil
}

func (x *PropagateResponse) GetCount() uint64 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *PropagateResponse) GetTargets() []*TargetOutcome {
	if x != nil {
		return x.Targets
	}
	return nil
}

type AddConnectorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Domain        uint32                 `protobuf:"varint,2,opt,name=domain,proto3" json:"domain,omitempty"`
	Connector     string                 `protobuf:"bytes,3,opt,name=connector,proto3" json:"connector,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddConnectorRequest) Reset() {
	*x = AddConnectorRequest{}
	mi := &file_rootmanager_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddConnectorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddConnectorRequest) ProtoMessage() {}

func (x *AddConnectorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddConnectorRequest.ProtoReflect.Descriptor instead.
func (*AddConnectorRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{8}
}

func (x *AddConnectorRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *AddConnectorRequest) GetDomain() uint32 {
	if x != nil {
		return x.Domain
	}
	return 0
}

func (x *AddConnectorRequest) GetConnector() string {
	if x != nil {
		return x.Connector
	}
	return ""
}

type RemoveConnectorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Domain        uint32                 `protobuf:"varint,2,opt,name=domain,proto3" json:"domain,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveConnectorRequest) Reset() {
	*x = RemoveConnectorRequest{}
	mi := &file_rootmanager_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveConnectorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveConnectorRequest) ProtoMessage() {}

func (x *RemoveConnectorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveConnectorRequest.ProtoReflect.Descriptor instead.
func (*RemoveConnectorRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{9}
}

func (x *RemoveConnectorRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *RemoveConnectorRequest) GetDomain() uint32 {
	if x != nil {
		return x.Domain
	}
	return 0
}

type ProposerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	Proposer      string                 `protobuf:"bytes,2,opt,name=proposer,proto3" json:"proposer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProposerRequest) Reset() {
	*x = ProposerRequest{}
	mi := &file_rootmanager_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProposerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProposerRequest) ProtoMessage() {}

func (x *ProposerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProposerRequest.ProtoReflect.Descriptor instead.
func (*ProposerRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{10}
}

func (x *ProposerRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ProposerRequest) GetProposer() string {
	if x != nil {
		return x.Proposer
	}
	return ""
}

type WorkableRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Domains       []uint32               `protobuf:"varint,1,rep,packed,name=domains,proto3" json:"domains,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WorkableRequest) Reset() {
	*x = WorkableRequest{}
	mi := &file_rootmanager_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WorkableRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WorkableRequest) ProtoMessage() {}

func (x *WorkableRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WorkableRequest.ProtoReflect.Descriptor instead.
func (*WorkableRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{11}
}

func (x *WorkableRequest) GetDomains() []uint32 {
	if x != nil {
		return x.Domains
	}
	return nil
}

type Workable struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workable      bool                   `protobuf:"varint,1,opt,name=workable,proto3" json:"workable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Workable) Reset() {
	*x = Workable{}
	mi := &file_rootmanager_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Workable) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Workable) ProtoMessage() {}

func (x *Workable) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Workable.ProtoReflect.Descriptor instead.
func (*Workable) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{12}
}

func (x *Workable) GetWorkable() bool {
	if x != nil {
		return x.Workable
	}
	return false
}

type ProcessRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	FromDomain    uint32                 `protobuf:"varint,2,opt,name=from_domain,json=fromDomain,proto3" json:"from_domain,omitempty"`
	MessageHash   []byte                 `protobuf:"bytes,3,opt,name=message_hash,json=messageHash,proto3" json:"message_hash,omitempty"`
	EncodedData   []byte                 `protobuf:"bytes,4,opt,name=encoded_data,json=encodedData,proto3" json:"encoded_data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessRequest) Reset() {
	*x = ProcessRequest{}
	mi := &file_rootmanager_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessRequest) ProtoMessage() {}

func (x *ProcessRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessRequest.ProtoReflect.Descriptor instead.
func (*ProcessRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{13}
}

func (x *ProcessRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ProcessRequest) GetFromDomain() uint32 {
	if x != nil {
		return x.FromDomain
	}
	return 0
}

func (x *ProcessRequest) GetMessageHash() []byte {
	if x != nil {
		return x.MessageHash
	}
	return nil
}

func (x *ProcessRequest) GetEncodedData() []byte {
	if x != nil {
		return x.EncodedData
	}
	return nil
}

type Info struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Mode           string                 `protobuf:"bytes,1,opt,name=mode,proto3" json:"mode,omitempty"`
	QueueCount     uint64                 `protobuf:"varint,2,opt,name=queue_count,json=queueCount,proto3" json:"queue_count,omitempty"`
	LastPropagated []byte                 `protobuf:"bytes,3,opt,name=last_propagated,json=lastPropagated,proto3" json:"last_propagated,omitempty"`
	SnapshotId     uint64                 `protobuf:"varint,4,opt,name=snapshot_id,json=snapshotId,proto3" json:"snapshot_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Info) Reset() {
	*x = Info{}
	mi := &file_rootmanager_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Info) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Info) ProtoMessage() {}

func (x *Info) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Info.ProtoReflect.Descriptor instead.
func (*Info) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{14}
}

func (x *Info) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

func (x *Info) GetQueueCount() uint64 {
	if x != nil {
		return x.QueueCount
	}
	return 0
}

func (x *Info) GetLastPropagated() []byte {
	if x != nil {
		return x.LastPropagated
	}
	return nil
}

func (x *Info) GetSnapshotId() uint64 {
	if x != nil {
		return x.SnapshotId
	}
	return 0
}

type SendMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Fee           uint64                 `protobuf:"varint,2,opt,name=fee,proto3" json:"fee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_rootmanager_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rootmanager_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageRequest.ProtoReflect.Descriptor instead.
func (*SendMessageRequest) Descriptor() ([]byte, []int) {
	return file_rootmanager_proto_rawDescGZIP(), []int{15}
}

func (x *SendMessageRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *SendMessageRequest) GetFee() uint64 {
	if x != nil {
		return x.Fee
	}
	return 0
}

var File_rootmanager_proto protoreflect.FileDescriptor

const file_rootmanager_proto_rawDesc = "" +
	"\n" +
	"\x11rootmanager.proto\x12\vrootmanager\"\a\n" +
	"\x05Empty\"\x05\n" +
	"\x03Ack\"'\n" +
	"\rCallerRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\"e\n" +
	"\x10AggregateRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x16\n" +
	"\x06domain\x18\x02 \x01(\rR\x06domain\x12!\n" +
	"\finbound_root\x18\x03 \x01(\fR\vinboundRoot\"\xb1\x01\n" +
	"\x0eProposeRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x1f\n" +
	"\vsnapshot_id\x18\x02 \x01(\x04R\n" +
	"snapshotId\x12%\n" +
	"\x0eaggregate_root\x18\x03 \x01(\fR\raggregateRoot\x12%\n" +
	"\x0esnapshot_roots\x18\x04 \x03(\fR\rsnapshotRoots\x12\x18\n" +
	"\adomains\x18\x05 \x03(\rR\adomains\"\x9b\x01\n" +
	"\x10PropagateRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x18\n" +
	"\adomains\x18\x02 \x03(\rR\adomains\x12\x1e\n" +
	"\n" +
	"connectors\x18\x03 \x03(\tR\n" +
	"connectors\x12\x12\n" +
	"\x04fees\x18\x04 \x03(\x04R\x04fees\x12!\n" +
	"\fencoded_data\x18\x05 \x03(\fR\vencodedData\"[\n" +
	"\rTargetOutcome\x12\x16\n" +
	"\x06domain\x18\x01 \x01(\rR\x06domain\x12\x1c\n" +
	"\tconnector\x18\x02 \x01(\tR\tconnector\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\"\x86\x01\n" +
	"\x11PropagateResponse\x12%\n" +
	"\x0eaggregate_root\x18\x01 \x01(\fR\raggregateRoot\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x04R\x05count\x124\n" +
	"\atargets\x18\x03 \x03(\v2\x1a.rootmanager.TargetOutcomeR\atargets\"c\n" +
	"\x13AddConnectorRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x16\n" +
	"\x06domain\x18\x02 \x01(\rR\x06domain\x12\x1c\n" +
	"\tconnector\x18\x03 \x01(\tR\tconnector\"H\n" +
	"\x16RemoveConnectorRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x16\n" +
	"\x06domain\x18\x02 \x01(\rR\x06domain\"E\n" +
	"\x0fProposerRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x1a\n" +
	"\bproposer\x18\x02 \x01(\tR\bproposer\"+\n" +
	"\x0fWorkableRequest\x12\x18\n" +
	"\adomains\x18\x01 \x03(\rR\adomains\"&\n" +
	"\bWorkable\x12\x1a\n" +
	"\bworkable\x18\x01 \x01(\bR\bworkable\"\x8f\x01\n" +
	"\x0eProcessRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x1f\n" +
	"\vfrom_domain\x18\x02 \x01(\rR\n" +
	"fromDomain\x12!\n" +
	"\fmessage_hash\x18\x03 \x01(\fR\vmessageHash\x12!\n" +
	"\fencoded_data\x18\x04 \x01(\fR\vencodedData\"\x85\x01\n" +
	"\x04Info\x12\x12\n" +
	"\x04mode\x18\x01 \x01(\tR\x04mode\x12\x1f\n" +
	"\vqueue_count\x18\x02 \x01(\x04R\n" +
	"queueCount\x12'\n" +
	"\x0flast_propagated\x18\x03 \x01(\fR\x0elastPropagated\x12\x1f\n" +
	"\vsnapshot_id\x18\x04 \x01(\x04R\n" +
	"snapshotId\":\n" +
	"\x12SendMessageRequest\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x10\n" +
	"\x03fee\x18\x02 \x01(\x04R\x03fee2\x85\b\n" +
	"\vRootManager\x12<\n" +
	"\tAggregate\x12\x1d.rootmanager.AggregateRequest\x1a\x10.rootmanager.Ack\x12E\n" +
	"\x14ProposeAggregateRoot\x12\x1b.rootmanager.ProposeRequest\x1a\x10.rootmanager.Ack\x128\n" +
	"\bFinalize\x12\x1a.rootmanager.CallerRequest\x1a\x10.rootmanager.Ack\x12J\n" +
	"\tPropagate\x12\x1d.rootmanager.PropagateRequest\x1a\x1e.rootmanager.PropagateResponse\x12U\n" +
	"\x14FinalizeAndPropagate\x12\x1d.rootmanager.PropagateRequest\x1a\x1e.rootmanager.PropagateResponse\x12@\n" +
	"\x10ActivateSlowMode\x12\x1a.rootmanager.CallerRequest\x1a\x10.rootmanager.Ack\x12F\n" +
	"\x16ActivateOptimisticMode\x12\x1a.rootmanager.CallerRequest\x1a\x10.rootmanager.Ack\x12B\n" +
	"\fAddConnector\x12 .rootmanager.AddConnectorRequest\x1a\x10.rootmanager.Ack\x12H\n" +
	"\x0fRemoveConnector\x12#.rootmanager.RemoveConnectorRequest\x1a\x10.rootmanager.Ack\x12=\n" +
	"\vAddProposer\x12\x1c.rootmanager.ProposerRequest\x1a\x10.rootmanager.Ack\x12@\n" +
	"\x0eRemoveProposer\x12\x1c.rootmanager.ProposerRequest\x1a\x10.rootmanager.Ack\x12H\n" +
	"\x11PropagateWorkable\x12\x1c.rootmanager.WorkableRequest\x1a\x15.rootmanager.Workable\x12<\n" +
	"\x0fProposeWorkable\x12\x12.rootmanager.Empty\x1a\x15.rootmanager.Workable\x12@\n" +
	"\x0fProcessFromRoot\x12\x1b.rootmanager.ProcessRequest\x1a\x10.rootmanager.Ack\x121\n" +
	"\bNodeInfo\x12\x12.rootmanager.Empty\x1a\x11.rootmanager.Info2P\n" +
	"\fHubConnector\x12@\n" +
	"\vSendMessage\x12\x1f.rootmanager.SendMessageRequest\x1a\x10.rootmanager.AckB8Z6github.com/crossmesh/rootmanager/io/gateway/grpc/protob\x06proto3"

var (
	file_rootmanager_proto_rawDescOnce sync.Once
	file_rootmanager_proto_rawDescData []byte
)

func file_rootmanager_proto_rawDescGZIP() []byte {
	file_rootmanager_proto_rawDescOnce.Do(func() {
		file_rootmanager_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rootmanager_proto_rawDesc), len(file_rootmanager_proto_rawDesc)))
	})
	return file_rootmanager_proto_rawDescData
}

var file_rootmanager_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_rootmanager_proto_goTypes = []any{
	(*Empty)(nil),                  // 0: rootmanager.Empty
	(*Ack)(nil),                    // 1: rootmanager.Ack
	(*CallerRequest)(nil),          // 2: rootmanager.CallerRequest
	(*AggregateRequest)(nil),       // 3: rootmanager.AggregateRequest
	(*ProposeRequest)(nil),         // 4: rootmanager.ProposeRequest
	(*PropagateRequest)(nil),       // 5: rootmanager.PropagateRequest
	(*TargetOutcome)(nil),          // 6: rootmanager.TargetOutcome
	(*PropagateResponse)(nil),      // 7: rootmanager.PropagateResponse
	(*AddConnectorRequest)(nil),    // 8: rootmanager.AddConnectorRequest
	(*RemoveConnectorRequest)(nil), // 9: rootmanager.RemoveConnectorRequest
	(*ProposerRequest)(nil),        // 10: rootmanager.ProposerRequest
	(*WorkableRequest)(nil),        // 11: rootmanager.WorkableRequest
	(*Workable)(nil),               // 12: rootmanager.Workable
	(*ProcessRequest)(nil),         // 13: rootmanager.ProcessRequest
	(*Info)(nil),                   // 14: rootmanager.Info
	(*SendMessageRequest)(nil),     // 15: rootmanager.SendMessageRequest
}
var file_rootmanager_proto_depIdxs = []int32{
	6,  // 0: rootmanager.PropagateResponse.targets:type_name -> rootmanager.TargetOutcome
	3,  // 1: rootmanager.RootManager.Aggregate:input_type -> rootmanager.AggregateRequest
	4,  // 2: rootmanager.RootManager.ProposeAggregateRoot:input_type -> rootmanager.ProposeRequest
	2,  // 3: rootmanager.RootManager.Finalize:input_type -> rootmanager.CallerRequest
	5,  // 4: rootmanager.RootManager.Propagate:input_type -> rootmanager.PropagateRequest
	5,  // 5: rootmanager.RootManager.FinalizeAndPropagate:input_type -> rootmanager.PropagateRequest
	2,  // 6: rootmanager.RootManager.ActivateSlowMode:input_type -> rootmanager.CallerRequest
	2,  // 7: rootmanager.RootManager.ActivateOptimisticMode:input_type -> rootmanager.CallerRequest
	8,  // 8: rootmanager.RootManager.AddConnector:input_type -> rootmanager.AddConnectorRequest
	9,  // 9: rootmanager.RootManager.RemoveConnector:input_type -> rootmanager.RemoveConnectorRequest
	10, // 10: rootmanager.RootManager.AddProposer:input_type -> rootmanager.ProposerRequest
	10, // 11: rootmanager.RootManager.RemoveProposer:input_type -> rootmanager.ProposerRequest
	11, // 12: rootmanager.RootManager.PropagateWorkable:input_type -> rootmanager.WorkableRequest
	0,  // 13: rootmanager.RootManager.ProposeWorkable:input_type -> rootmanager.Empty
	13, // 14: rootmanager.RootManager.ProcessFromRoot:input_type -> rootmanager.ProcessRequest
	0,  // 15: rootmanager.RootManager.NodeInfo:input_type -> rootmanager.Empty
	15, // 16: rootmanager.HubConnector.SendMessage:input_type -> rootmanager.SendMessageRequest
	1,  // 17: rootmanager.RootManager.Aggregate:output_type -> rootmanager.Ack
	1,  // 18: rootmanager.RootManager.ProposeAggregateRoot:output_type -> rootmanager.Ack
	1,  // 19: rootmanager.RootManager.Finalize:output_type -> rootmanager.Ack
	7,  // 20: rootmanager.RootManager.Propagate:output_type -> rootmanager.PropagateResponse
	7,  // 21: rootmanager.RootManager.FinalizeAndPropagate:output_type -> rootmanager.PropagateResponse
	1,  // 22: rootmanager.RootManager.ActivateSlowMode:output_type -> rootmanager.Ack
	1,  // 23: rootmanager.RootManager.ActivateOptimisticMode:output_type -> rootmanager.Ack
	1,  // 24: rootmanager.RootManager.AddConnector:output_type -> rootmanager.Ack
	1,  // 25: rootmanager.RootManager.RemoveConnector:output_type -> rootmanager.Ack
	1,  // 26: rootmanager.RootManager.AddProposer:output_type -> rootmanager.Ack
	1,  // 27: rootmanager.RootManager.RemoveProposer:output_type -> rootmanager.Ack
	12, // 28: rootmanager.RootManager.PropagateWorkable:output_type -> rootmanager.Workable
	12, // 29: rootmanager.RootManager.ProposeWorkable:output_type -> rootmanager.Workable
	1,  // 30: rootmanager.RootManager.ProcessFromRoot:output_type -> rootmanager.Ack
	14, // 31: rootmanager.RootManager.NodeInfo:output_type -> rootmanager.Info
	1,  // 32: rootmanager.HubConnector.SendMessage:output_type -> rootmanager.Ack
	17, // [17:33] is the sub-list for method output_type
	1,  // [1:17] is the sub-list for method input_type
	1,  // [1:1] is the sub-list for extension type_name
	1,  // [1:1] is the sub-list for extension extendee
	0,  // [0:1] is the sub-list for field type_name
}

func init() { file_rootmanager_proto_init() }
func file_rootmanager_proto_init() {
	if File_rootmanager_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rootmanager_proto_rawDesc), len(file_rootmanager_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_rootmanager_proto_goTypes,
		DependencyIndexes: file_rootmanager_proto_depIdxs,
		MessageInfos:      file_rootmanager_proto_msgTypes,
	}.Build()
	File_rootmanager_proto = out.File
	file_rootmanager_proto_goTypes = nil
	file_rootmanager_proto_depIdxs = nil
}

package server

import (
	"context"
	"net"
	"time"

	"github.com/crossmesh/rootmanager/config"
	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/crossmesh/rootmanager/core/rootmanager"
	"github.com/crossmesh/rootmanager/io/gateway/grpc/proto"
	"github.com/openzipkin/zipkin-go"
	zipkingrpc "github.com/openzipkin/zipkin-go/middleware/grpc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// Engine is the aggregation core behind the server.
type Engine interface {
	Aggregate(caller entity.Address, domain entity.Domain, root entity.Root) error
	ActivateOptimisticMode(caller entity.Address) error
	ActivateSlowMode(caller entity.Address) error
	Mode() rootmanager.Mode
	QueueCount() int
	LastPropagated() entity.Root
	SnapshotID() uint64
}

// Gate is the scheduling gateway wrapping the engine for keepers.
type Gate interface {
	ProposeAggregateRoot(caller entity.Address, snapshotID uint64, aggregateRoot entity.Root,
		snapshotRoots []entity.Root, domains []entity.Domain) error
	Finalize(caller entity.Address) error
	Propagate(ctx context.Context, caller entity.Address, targets []entity.Target) (*entity.PropagationResult, error)
	FinalizeAndPropagate(ctx context.Context, caller entity.Address, targets []entity.Target) (*entity.PropagationResult, error)
	PropagateWorkable(domains []entity.Domain) bool
	ProposeWorkable() bool
	ProcessFromRoot(ctx context.Context, caller entity.Address, encodedData []byte,
		fromDomain entity.Domain, messageHash entity.Root) error
}

// Registry is the domain/connector and proposer registry surface.
type Registry interface {
	AddConnector(caller entity.Address, domain entity.Domain, connector entity.Address) error
	RemoveConnector(caller entity.Address, domain entity.Domain) error
	AddProposer(caller, addr entity.Address) error
	RemoveProposer(caller, addr entity.Address) error
}

// Server exposes the engine, gateway and registry over gRPC.
type Server struct {
	proto.UnimplementedRootManagerServer
	Addr       string
	GRPCServer *grpc.Server
	Tracer     *zipkin.Tracer
	Config     *config.Config
	engine     Engine
	gate       Gate
	registry   Registry
}

// New fabric func for Server
func New(conf *config.Config, tracer *zipkin.Tracer, engine Engine, gate Gate, registry Registry) (*Server, error) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC822,
	})

	if engine == nil || gate == nil || registry == nil {
		return nil, errors.New("server dependencies are not wired")
	}

	return &Server{
		Addr:     conf.Nodeaddr,
		Tracer:   tracer,
		Config:   conf,
		engine:   engine,
		gate:     gate,
		registry: registry,
	}, nil
}

func (s *Server) Aggregate(ctx context.Context, req *proto.AggregateRequest) (*proto.Ack, error) {
	var span zipkin.Span
	if s.Tracer != nil {
		span, ctx = s.Tracer.StartSpanFromContext(ctx, "AggregateHandle")
		defer span.Finish()
	}

	root, err := entity.RootFromBytes(req.InboundRoot)
	if err != nil {
		return nil, toStatus(errors.Wrap(ErrInvalidLengths, err.Error()))
	}
	err = s.engine.Aggregate(entity.Address(req.Caller), entity.Domain(req.Domain), root)
	return ack(err)
}

func (s *Server) ProposeAggregateRoot(ctx context.Context, req *proto.ProposeRequest) (*proto.Ack, error) {
	var span zipkin.Span
	if s.Tracer != nil {
		span, _ = s.Tracer.StartSpanFromContext(ctx, "ProposeHandle")
		defer span.Finish()
	}

	aggregateRoot, err := entity.RootFromBytes(req.AggregateRoot)
	if err != nil {
		return nil, toStatus(errors.Wrap(ErrInvalidLengths, err.Error()))
	}
	snapshotRoots, err := rootsFromPb(req.SnapshotRoots)
	if err != nil {
		return nil, toStatus(err)
	}

	err = s.gate.ProposeAggregateRoot(entity.Address(req.Caller), req.SnapshotId,
		aggregateRoot, snapshotRoots, domainsFromPb(req.Domains))
	return ack(err)
}

func (s *Server) Finalize(ctx context.Context, req *proto.CallerRequest) (*proto.Ack, error) {
	return ack(s.gate.Finalize(entity.Address(req.Caller)))
}

func (s *Server) Propagate(ctx context.Context, req *proto.PropagateRequest) (*proto.PropagateResponse, error) {
	var span zipkin.Span
	if s.Tracer != nil {
		span, ctx = s.Tracer.StartSpanFromContext(ctx, "PropagateHandle")
		defer span.Finish()
	}

	targets, err := targetsFromPb(req)
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := s.gate.Propagate(ctx, entity.Address(req.Caller), targets)
	if err != nil {
		return nil, toStatus(err)
	}
	return resultToPb(result), nil
}

func (s *Server) FinalizeAndPropagate(ctx context.Context, req *proto.PropagateRequest) (*proto.PropagateResponse, error) {
	targets, err := targetsFromPb(req)
	if err != nil {
		return nil, toStatus(err)
	}

	result, err := s.gate.FinalizeAndPropagate(ctx, entity.Address(req.Caller), targets)
	if err != nil {
		return nil, toStatus(err)
	}
	return resultToPb(result), nil
}

func (s *Server) ActivateSlowMode(ctx context.Context, req *proto.CallerRequest) (*proto.Ack, error) {
	return ack(s.engine.ActivateSlowMode(entity.Address(req.Caller)))
}

func (s *Server) ActivateOptimisticMode(ctx context.Context, req *proto.CallerRequest) (*proto.Ack, error) {
	return ack(s.engine.ActivateOptimisticMode(entity.Address(req.Caller)))
}

func (s *Server) AddConnector(ctx context.Context, req *proto.AddConnectorRequest) (*proto.Ack, error) {
	return ack(s.registry.AddConnector(entity.Address(req.Caller), entity.Domain(req.Domain), entity.Address(req.Connector)))
}

func (s *Server) RemoveConnector(ctx context.Context, req *proto.RemoveConnectorRequest) (*proto.Ack, error) {
	return ack(s.registry.RemoveConnector(entity.Address(req.Caller), entity.Domain(req.Domain)))
}

func (s *Server) AddProposer(ctx context.Context, req *proto.ProposerRequest) (*proto.Ack, error) {
	return ack(s.registry.AddProposer(entity.Address(req.Caller), entity.Address(req.Proposer)))
}

func (s *Server) RemoveProposer(ctx context.Context, req *proto.ProposerRequest) (*proto.Ack, error) {
	return ack(s.registry.RemoveProposer(entity.Address(req.Caller), entity.Address(req.Proposer)))
}

func (s *Server) PropagateWorkable(ctx context.Context, req *proto.WorkableRequest) (*proto.Workable, error) {
	return &proto.Workable{Workable: s.gate.PropagateWorkable(domainsFromPb(req.Domains))}, nil
}

func (s *Server) ProposeWorkable(ctx context.Context, req *proto.Empty) (*proto.Workable, error) {
	return &proto.Workable{Workable: s.gate.ProposeWorkable()}, nil
}

func (s *Server) ProcessFromRoot(ctx context.Context, req *proto.ProcessRequest) (*proto.Ack, error) {
	hash, err := entity.RootFromBytes(req.MessageHash)
	if err != nil {
		return nil, toStatus(errors.Wrap(ErrInvalidLengths, err.Error()))
	}
	return ack(s.gate.ProcessFromRoot(ctx, entity.Address(req.Caller), req.EncodedData,
		entity.Domain(req.FromDomain), hash))
}

func (s *Server) NodeInfo(ctx context.Context, req *proto.Empty) (*proto.Info, error) {
	last := s.engine.LastPropagated()
	return &proto.Info{
		Mode:           string(s.engine.Mode()),
		QueueCount:     uint64(s.engine.QueueCount()),
		LastPropagated: last[:],
		SnapshotId:     s.engine.SnapshotID(),
	}, nil
}

func ack(err error) (*proto.Ack, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return &proto.Ack{}, nil
}

// Run starts non-blocking GRPC server
func (s *Server) Run(opts ...grpc.UnaryServerInterceptor) {
	if s.Config.WithTrace && s.Tracer != nil {
		s.GRPCServer = grpc.NewServer(grpc.ChainUnaryInterceptor(opts...), grpc.StatsHandler(zipkingrpc.NewServerHandler(s.Tracer)))
	} else {
		s.GRPCServer = grpc.NewServer(grpc.ChainUnaryInterceptor(opts...))
	}
	proto.RegisterRootManagerServer(s.GRPCServer, s)

	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	log.Infof("listening on tcp://%s", s.Addr)

	go s.GRPCServer.Serve(l)
}

// Stop stops server
func (s *Server) Stop() {
	log.Info("stopping server")
	s.GRPCServer.GracefulStop()
	log.Info("server stopped")
}

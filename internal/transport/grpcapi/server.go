// Package grpcapi serves the simulation service over gRPC.
package grpcapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/cricket-sim/internal/service"
)

// Server adapts service.Simulation to SimulatorServer.
type Server struct {
	svc    *service.Simulation
	logger *slog.Logger
}

var _ SimulatorServer = (*Server)(nil)

func NewServer(svc *service.Simulation, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{svc: svc, logger: logger}
}

// Register installs the simulator and a health service on gs and marks
// both as serving.
func Register(gs *grpc.Server, srv *Server) *health.Server {
	RegisterSimulatorServer(gs, srv)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return hs
}

func (s *Server) SimulateMatch(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req service.SimulateRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	resp, err := s.svc.Simulate(ctx, req)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return encodeStruct(resp)
}

func (s *Server) ProjectMatch(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req service.ProjectRequest
	if err := decodeStruct(in, &req); err != nil {
		return nil, err
	}
	resp, err := s.svc.Project(ctx, req)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return encodeStruct(resp)
}

func (s *Server) toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error("rpc failed", "error", err)
	return status.Error(codes.Internal, err.Error())
}

// decodeStruct round-trips a struct payload through JSON into v.
func decodeStruct(in *structpb.Struct, v any) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}
	data, err := json.Marshal(in.AsMap())
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "encode request: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return status.Errorf(codes.InvalidArgument, "decode request: %v", err)
	}
	return nil
}

func encodeStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out, err := structFromJSON(data)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

func structFromJSON(data []byte) (*structpb.Struct, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return structpb.NewStruct(payload)
}

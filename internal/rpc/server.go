package rpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/engine"
	"github.com/danielpatrickdp/quantum-kitty/go-controller/internal/state"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// #region server-struct

// AnonymousIdentity is used when a call carries no identity header.
const AnonymousIdentity = "anonymous"

// Server exposes an Engine over gRPC. Timestamps come from the server clock;
// callers never supply them.
type Server struct {
	engine *engine.Engine
	now     func() time.Time
	logger  *slog.Logger
	limiter *rate.Limiter
}

// NewServer wraps e. A nil logger falls back to slog.Default().
func NewServer(e *engine.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		engine: e,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// WithClock replaces the server clock. Used by tests.
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

// WithRateLimit limits served calls to perSecond with the given burst.
// A non-positive perSecond leaves calls unlimited.
func (s *Server) WithRateLimit(perSecond float64, burst int) *Server {
	if perSecond <= 0 {
		s.limiter = nil
		return s
	}
	if burst < 1 {
		burst = 1
	}
	s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	return s
}

// NewGRPCServer returns a grpc.Server with KittyService registered and
// request logging installed. Rate limiting runs inside logging so rejected
// calls are still logged.
func NewGRPCServer(s *Server, opts ...grpc.ServerOption) *grpc.Server {
	chain := []grpc.UnaryServerInterceptor{LoggingInterceptor(s.logger)}
	if s.limiter != nil {
		chain = append(chain, RateLimitInterceptor(s.limiter))
	}
	opts = append(opts, grpc.ChainUnaryInterceptor(chain...))
	gs := grpc.NewServer(opts...)
	Register(gs, s)
	return gs
}

// #endregion server-struct

// #region handlers

func (s *Server) Greet(_ context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(s.engine.Greet(in.GetValue())), nil
}

func (s *Server) QuantumGreet(_ context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	res := s.engine.QuantumGreet(in.GetValue(), s.now())
	return stateStruct(res.Condition, res.Intensity, res.Tone, "greeting", res.Greeting), nil
}

func (s *Server) RefreshState(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	v := s.engine.RefreshState(s.now())
	return stateStruct(v.Condition, v.Intensity, v.Tone, "derived_at", v.DerivedAt.UTC().Format(time.RFC3339)), nil
}

func (s *Server) AddTemplate(_ context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	category := field(in, "category")
	if category == "" {
		return nil, status.Error(codes.InvalidArgument, "category is required")
	}
	return wrapperspb.Bool(s.engine.AddTemplate(category, field(in, "text"))), nil
}

func (s *Server) AddConditionAdjective(_ context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	c, ok := state.ParseCondition(field(in, "condition"))
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown condition %q", field(in, "condition"))
	}
	return wrapperspb.Bool(s.engine.AddConditionAdjective(c, field(in, "word"))), nil
}

func (s *Server) AddTonePhrase(_ context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	t, ok := state.ParseTone(field(in, "tone"))
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown tone %q", field(in, "tone"))
	}
	return wrapperspb.Bool(s.engine.AddTonePhrase(t, field(in, "phrase"))), nil
}

func (s *Server) GetTemplatesForCategory(_ context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	list := s.engine.TemplatesFor(in.GetValue())
	values := make([]*structpb.Value, len(list))
	for i, t := range list {
		values[i] = structpb.NewStringValue(t)
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *Server) ComposeWisdom(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var topics []string
	for _, v := range in.GetFields()["topics"].GetListValue().GetValues() {
		topics = append(topics, v.GetStringValue())
	}
	res := s.engine.ComposeWisdom(field(in, "subject"), topics, s.now())
	return stateStruct(res.Condition, res.Intensity, res.Tone, "content", res.Content), nil
}

func (s *Server) SaveKittyName(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := s.engine.SaveBond(identity(ctx), in.GetValue()); err != nil {
		return nil, status.Errorf(codes.Internal, "save kitty name: %v", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) GetKittyName(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	label, found, err := s.engine.Bond(identity(ctx))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get kitty name: %v", err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"found": structpb.NewBoolValue(found),
		"name":  structpb.NewStringValue(label),
	}}, nil
}

// #endregion handlers

// #region interceptor

// LoggingInterceptor logs each unary call with its duration and status code.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		attrs := []any{
			"method", info.FullMethod,
			"duration_ms", time.Since(start).Milliseconds(),
			"code", status.Code(err).String(),
		}
		if err != nil {
			logger.WarnContext(ctx, "rpc", append(attrs, "error", err.Error())...)
		} else {
			logger.InfoContext(ctx, "rpc", attrs...)
		}
		return resp, err
	}
}

// RateLimitInterceptor rejects calls with ResourceExhausted once limiter has
// no tokens left.
func RateLimitInterceptor(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !limiter.Allow() {
			return nil, status.Errorf(codes.ResourceExhausted, "%s: rate limit exceeded", info.FullMethod)
		}
		return handler(ctx, req)
	}
}

// #endregion interceptor

// #region helpers

func identity(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return AnonymousIdentity
	}
	if vals := md.Get(IdentityHeader); len(vals) > 0 && vals[0] != "" {
		return vals[0]
	}
	return AnonymousIdentity
}

func field(in *structpb.Struct, key string) string {
	return in.GetFields()[key].GetStringValue()
}

func stateStruct(c state.Condition, intensity int, t state.Tone, key, value string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		key:         structpb.NewStringValue(value),
		"condition": structpb.NewStringValue(string(c)),
		"intensity": structpb.NewNumberValue(float64(intensity)),
		"tone":      structpb.NewStringValue(string(t)),
	}}
}

// #endregion helpers

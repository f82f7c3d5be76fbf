package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// #region service-desc

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "qkitty.v1.KittyService"

// IdentityHeader carries the caller identity used for kitty bonds.
const IdentityHeader = "x-kitty-identity"

// Method names.
const (
	MethodGreet                   = "Greet"
	MethodQuantumGreet            = "QuantumGreet"
	MethodRefreshState            = "RefreshState"
	MethodAddTemplate             = "AddTemplate"
	MethodAddConditionAdjective   = "AddConditionAdjective"
	MethodAddTonePhrase           = "AddTonePhrase"
	MethodGetTemplatesForCategory = "GetTemplatesForCategory"
	MethodComposeWisdom           = "ComposeWisdom"
	MethodSaveKittyName           = "SaveKittyName"
	MethodGetKittyName            = "GetKittyName"
)

// KittyServiceServer is the server side of KittyService. Messages are
// protobuf well-known types, so no generated package is needed.
type KittyServiceServer interface {
	Greet(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	QuantumGreet(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	RefreshState(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	AddTemplate(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	AddConditionAdjective(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	AddTonePhrase(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	GetTemplatesForCategory(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	ComposeWisdom(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveKittyName(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	GetKittyName(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// ServiceDesc describes KittyService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*KittyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodGreet, KittyServiceServer.Greet),
		unary(MethodQuantumGreet, KittyServiceServer.QuantumGreet),
		unary(MethodRefreshState, KittyServiceServer.RefreshState),
		unary(MethodAddTemplate, KittyServiceServer.AddTemplate),
		unary(MethodAddConditionAdjective, KittyServiceServer.AddConditionAdjective),
		unary(MethodAddTonePhrase, KittyServiceServer.AddTonePhrase),
		unary(MethodGetTemplatesForCategory, KittyServiceServer.GetTemplatesForCategory),
		unary(MethodComposeWisdom, KittyServiceServer.ComposeWisdom),
		unary(MethodSaveKittyName, KittyServiceServer.SaveKittyName),
		unary(MethodGetKittyName, KittyServiceServer.GetKittyName),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "qkitty/v1/kitty.proto",
}

// Register attaches srv to s.
func Register(s grpc.ServiceRegistrar, srv KittyServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary builds the MethodDesc that protoc-gen-go-grpc would emit for one RPC.
func unary[Req any, Resp any](method string, call func(KittyServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(KittyServiceServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// #endregion service-desc

package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service speaks protobuf well-known types only, so no generated code is
// needed: ids travel as Int64Value and categories as Struct {id, name}.
const ServiceName = "category.v1.CategoryService"

type CategoryServiceServer interface {
	ListCategories(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetCategory(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	CreateCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCategory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCategory(context.Context, *wrapperspb.Int64Value) (*wrapperspb.StringValue, error)
}

var CategoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListCategories", CategoryServiceServer.ListCategories),
		unary("GetCategory", CategoryServiceServer.GetCategory),
		unary("CreateCategory", CategoryServiceServer.CreateCategory),
		unary("UpdateCategory", CategoryServiceServer.UpdateCategory),
		unary("DeleteCategory", CategoryServiceServer.DeleteCategory),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "category/v1/category.proto",
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unary[Req any, Resp any](name string, call func(CategoryServiceServer, context.Context, *Req) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CategoryServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CategoryServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

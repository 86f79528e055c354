package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "gophstore.StorefrontService"

const (
	StorefrontService_Ping_FullMethodName               = "/gophstore.StorefrontService/Ping"
	StorefrontService_Register_FullMethodName           = "/gophstore.StorefrontService/Register"
	StorefrontService_Login_FullMethodName              = "/gophstore.StorefrontService/Login"
	StorefrontService_RefreshToken_FullMethodName       = "/gophstore.StorefrontService/RefreshToken"
	StorefrontService_Logout_FullMethodName             = "/gophstore.StorefrontService/Logout"
	StorefrontService_GetProfile_FullMethodName         = "/gophstore.StorefrontService/GetProfile"
	StorefrontService_UpdateProfile_FullMethodName      = "/gophstore.StorefrontService/UpdateProfile"
	StorefrontService_CreateProduct_FullMethodName      = "/gophstore.StorefrontService/CreateProduct"
	StorefrontService_MarkSold_FullMethodName           = "/gophstore.StorefrontService/MarkSold"
	StorefrontService_RequestImageUpload_FullMethodName = "/gophstore.StorefrontService/RequestImageUpload"
	StorefrontService_GetImageURL_FullMethodName        = "/gophstore.StorefrontService/GetImageURL"
	StorefrontService_WatchProducts_FullMethodName      = "/gophstore.StorefrontService/WatchProducts"
)

// PublicMethods can be called without an access token.
var PublicMethods = map[string]bool{
	StorefrontService_Ping_FullMethodName:         true,
	StorefrontService_Register_FullMethodName:     true,
	StorefrontService_Login_FullMethodName:        true,
	StorefrontService_RefreshToken_FullMethodName: true,
	StorefrontService_Logout_FullMethodName:       true,
}

// StorefrontServiceClient is the client API for the storefront service.
type StorefrontServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*Profile, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error)
	MarkSold(ctx context.Context, in *MarkSoldRequest, opts ...grpc.CallOption) (*MarkSoldResponse, error)
	RequestImageUpload(ctx context.Context, in *RequestImageUploadRequest, opts ...grpc.CallOption) (*RequestImageUploadResponse, error)
	GetImageURL(ctx context.Context, in *GetImageURLRequest, opts ...grpc.CallOption) (*GetImageURLResponse, error)
	WatchProducts(ctx context.Context, in *WatchProductsRequest, opts ...grpc.CallOption) (StorefrontService_WatchProductsClient, error)
}

type storefrontServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStorefrontServiceClient(cc grpc.ClientConnInterface) StorefrontServiceClient {
	return &storefrontServiceClient{cc}
}

func (c *storefrontServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_Register_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_Login_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_RefreshToken_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	out := new(LogoutResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_Logout_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*Profile, error) {
	out := new(Profile)
	if err := c.cc.Invoke(ctx, StorefrontService_GetProfile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	out := new(UpdateProfileResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_UpdateProfile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*CreateProductResponse, error) {
	out := new(CreateProductResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_CreateProduct_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) MarkSold(ctx context.Context, in *MarkSoldRequest, opts ...grpc.CallOption) (*MarkSoldResponse, error) {
	out := new(MarkSoldResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_MarkSold_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) RequestImageUpload(ctx context.Context, in *RequestImageUploadRequest, opts ...grpc.CallOption) (*RequestImageUploadResponse, error) {
	out := new(RequestImageUploadResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_RequestImageUpload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) GetImageURL(ctx context.Context, in *GetImageURLRequest, opts ...grpc.CallOption) (*GetImageURLResponse, error) {
	out := new(GetImageURLResponse)
	if err := c.cc.Invoke(ctx, StorefrontService_GetImageURL_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) WatchProducts(ctx context.Context, in *WatchProductsRequest, opts ...grpc.CallOption) (StorefrontService_WatchProductsClient, error) {
	stream, err := c.cc.NewStream(ctx, &StorefrontService_ServiceDesc.Streams[0], StorefrontService_WatchProducts_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &storefrontServiceWatchProductsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// StorefrontService_WatchProductsClient receives product snapshots.
type StorefrontService_WatchProductsClient interface {
	Recv() (*ProductSnapshot, error)
	grpc.ClientStream
}

type storefrontServiceWatchProductsClient struct {
	grpc.ClientStream
}

func (x *storefrontServiceWatchProductsClient) Recv() (*ProductSnapshot, error) {
	m := new(ProductSnapshot)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// StorefrontServiceServer is the server API for the storefront service.
// Implementations must embed UnimplementedStorefrontServiceServer.
type StorefrontServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*SessionResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*SessionResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*Profile, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error)
	MarkSold(context.Context, *MarkSoldRequest) (*MarkSoldResponse, error)
	RequestImageUpload(context.Context, *RequestImageUploadRequest) (*RequestImageUploadResponse, error)
	GetImageURL(context.Context, *GetImageURLRequest) (*GetImageURLResponse, error)
	WatchProducts(*WatchProductsRequest, StorefrontService_WatchProductsServer) error
	mustEmbedUnimplementedStorefrontServiceServer()
}

// UnimplementedStorefrontServiceServer answers codes.Unimplemented for every method.
type UnimplementedStorefrontServiceServer struct{}

func (UnimplementedStorefrontServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedStorefrontServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedStorefrontServiceServer) Login(context.Context, *LoginRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedStorefrontServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedStorefrontServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedStorefrontServiceServer) GetProfile(context.Context, *GetProfileRequest) (*Profile, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedStorefrontServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}
func (UnimplementedStorefrontServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*CreateProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}
func (UnimplementedStorefrontServiceServer) MarkSold(context.Context, *MarkSoldRequest) (*MarkSoldResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkSold not implemented")
}
func (UnimplementedStorefrontServiceServer) RequestImageUpload(context.Context, *RequestImageUploadRequest) (*RequestImageUploadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestImageUpload not implemented")
}
func (UnimplementedStorefrontServiceServer) GetImageURL(context.Context, *GetImageURLRequest) (*GetImageURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetImageURL not implemented")
}
func (UnimplementedStorefrontServiceServer) WatchProducts(*WatchProductsRequest, StorefrontService_WatchProductsServer) error {
	return status.Error(codes.Unimplemented, "method WatchProducts not implemented")
}
func (UnimplementedStorefrontServiceServer) mustEmbedUnimplementedStorefrontServiceServer() {}

func RegisterStorefrontServiceServer(s grpc.ServiceRegistrar, srv StorefrontServiceServer) {
	s.RegisterService(&StorefrontService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodDesc.Handler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(StorefrontServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StorefrontServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StorefrontServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func _StorefrontService_WatchProducts_Handler(srv any, stream grpc.ServerStream) error {
	m := new(WatchProductsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(StorefrontServiceServer).WatchProducts(m, &storefrontServiceWatchProductsServer{stream})
}

// StorefrontService_WatchProductsServer sends product snapshots.
type StorefrontService_WatchProductsServer interface {
	Send(*ProductSnapshot) error
	grpc.ServerStream
}

type storefrontServiceWatchProductsServer struct {
	grpc.ServerStream
}

func (x *storefrontServiceWatchProductsServer) Send(m *ProductSnapshot) error {
	return x.ServerStream.SendMsg(m)
}

var StorefrontService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(StorefrontService_Ping_FullMethodName, StorefrontServiceServer.Ping)},
		{MethodName: "Register", Handler: unaryHandler(StorefrontService_Register_FullMethodName, StorefrontServiceServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(StorefrontService_Login_FullMethodName, StorefrontServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unaryHandler(StorefrontService_RefreshToken_FullMethodName, StorefrontServiceServer.RefreshToken)},
		{MethodName: "Logout", Handler: unaryHandler(StorefrontService_Logout_FullMethodName, StorefrontServiceServer.Logout)},
		{MethodName: "GetProfile", Handler: unaryHandler(StorefrontService_GetProfile_FullMethodName, StorefrontServiceServer.GetProfile)},
		{MethodName: "UpdateProfile", Handler: unaryHandler(StorefrontService_UpdateProfile_FullMethodName, StorefrontServiceServer.UpdateProfile)},
		{MethodName: "CreateProduct", Handler: unaryHandler(StorefrontService_CreateProduct_FullMethodName, StorefrontServiceServer.CreateProduct)},
		{MethodName: "MarkSold", Handler: unaryHandler(StorefrontService_MarkSold_FullMethodName, StorefrontServiceServer.MarkSold)},
		{MethodName: "RequestImageUpload", Handler: unaryHandler(StorefrontService_RequestImageUpload_FullMethodName, StorefrontServiceServer.RequestImageUpload)},
		{MethodName: "GetImageURL", Handler: unaryHandler(StorefrontService_GetImageURL_FullMethodName, StorefrontServiceServer.GetImageURL)},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchProducts",
			Handler:       _StorefrontService_WatchProducts_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "proto/gophstore.proto",
}

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: vetlink/v1/vetlink.proto

package vetlinkv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	VetLinkService_Register_FullMethodName           = "/vetlink.v1.VetLinkService/Register"
	VetLinkService_Login_FullMethodName              = "/vetlink.v1.VetLinkService/Login"
	VetLinkService_GetProfile_FullMethodName         = "/vetlink.v1.VetLinkService/GetProfile"
	VetLinkService_CompleteVetProfile_FullMethodName = "/vetlink.v1.VetLinkService/CompleteVetProfile"
	VetLinkService_GetOnlineStatus_FullMethodName    = "/vetlink.v1.VetLinkService/GetOnlineStatus"
	VetLinkService_ToggleOnlineStatus_FullMethodName = "/vetlink.v1.VetLinkService/ToggleOnlineStatus"
	VetLinkService_MatchVets_FullMethodName          = "/vetlink.v1.VetLinkService/MatchVets"
	VetLinkService_OpenChat_FullMethodName           = "/vetlink.v1.VetLinkService/OpenChat"
	VetLinkService_SendMessage_FullMethodName        = "/vetlink.v1.VetLinkService/SendMessage"
	VetLinkService_ListPets_FullMethodName           = "/vetlink.v1.VetLinkService/ListPets"
	VetLinkService_AddPet_FullMethodName             = "/vetlink.v1.VetLinkService/AddPet"
	VetLinkService_RemovePet_FullMethodName          = "/vetlink.v1.VetLinkService/RemovePet"
)

// VetLinkServiceClient is the client API for VetLinkService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// VetLinkService connects pet owners with online veterinarians: account
// registration and login, profile lookups, pet records, the vet online
// status toggle, discovery of reachable vets and two-party realtime chat.
type VetLinkServiceClient interface {
	// Register creates a user account plus its profile row and returns a JWT.
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	// Login authenticates an existing account and returns a JWT.
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	// GetProfile returns the profile row for a user id (chat window header).
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	// CompleteVetProfile records the extended vet profile and creates the
	// matching activity record (offline by default).
	CompleteVetProfile(ctx context.Context, in *CompleteVetProfileRequest, opts ...grpc.CallOption) (*CompleteVetProfileResponse, error)
	// GetOnlineStatus reads the caller's current online flag.
	GetOnlineStatus(ctx context.Context, in *GetOnlineStatusRequest, opts ...grpc.CallOption) (*OnlineStatusResponse, error)
	// ToggleOnlineStatus flips the caller's online flag and returns the new value.
	ToggleOnlineStatus(ctx context.Context, in *ToggleOnlineStatusRequest, opts ...grpc.CallOption) (*OnlineStatusResponse, error)
	// MatchVets streams every currently online vet joined with profile details.
	MatchVets(ctx context.Context, in *MatchVetsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MatchVetsResponse], error)
	// OpenChat replays the room history in order and then streams live
	// messages until the client goes away.
	OpenChat(ctx context.Context, in *OpenChatRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChatMessage], error)
	// SendMessage persists one message; the saved copy is delivered to every
	// open chat stream for the room, the sender's included.
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	// Pet records for the owner home screen.
	ListPets(ctx context.Context, in *ListPetsRequest, opts ...grpc.CallOption) (*ListPetsResponse, error)
	AddPet(ctx context.Context, in *AddPetRequest, opts ...grpc.CallOption) (*AddPetResponse, error)
	RemovePet(ctx context.Context, in *RemovePetRequest, opts ...grpc.CallOption) (*RemovePetResponse, error)
}

type vetLinkServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVetLinkServiceClient(cc grpc.ClientConnInterface) VetLinkServiceClient {
	return &vetLinkServiceClient{cc}
}

func (c *vetLinkServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterResponse)
	err := c.cc.Invoke(ctx, VetLinkService_Register_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, VetLinkService_Login_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetProfileResponse)
	err := c.cc.Invoke(ctx, VetLinkService_GetProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) CompleteVetProfile(ctx context.Context, in *CompleteVetProfileRequest, opts ...grpc.CallOption) (*CompleteVetProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteVetProfileResponse)
	err := c.cc.Invoke(ctx, VetLinkService_CompleteVetProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) GetOnlineStatus(ctx context.Context, in *GetOnlineStatusRequest, opts ...grpc.CallOption) (*OnlineStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OnlineStatusResponse)
	err := c.cc.Invoke(ctx, VetLinkService_GetOnlineStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) ToggleOnlineStatus(ctx context.Context, in *ToggleOnlineStatusRequest, opts ...grpc.CallOption) (*OnlineStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OnlineStatusResponse)
	err := c.cc.Invoke(ctx, VetLinkService_ToggleOnlineStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) MatchVets(ctx context.Context, in *MatchVetsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MatchVetsResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &VetLinkService_ServiceDesc.Streams[0], VetLinkService_MatchVets_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[MatchVetsRequest, MatchVetsResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type VetLinkService_MatchVetsClient = grpc.ServerStreamingClient[MatchVetsResponse]

func (c *vetLinkServiceClient) OpenChat(ctx context.Context, in *OpenChatRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChatMessage], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &VetLinkService_ServiceDesc.Streams[1], VetLinkService_OpenChat_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[OpenChatRequest, ChatMessage]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type VetLinkService_OpenChatClient = grpc.ServerStreamingClient[ChatMessage]

func (c *vetLinkServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendMessageResponse)
	err := c.cc.Invoke(ctx, VetLinkService_SendMessage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) ListPets(ctx context.Context, in *ListPetsRequest, opts ...grpc.CallOption) (*ListPetsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPetsResponse)
	err := c.cc.Invoke(ctx, VetLinkService_ListPets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) AddPet(ctx context.Context, in *AddPetRequest, opts ...grpc.CallOption) (*AddPetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddPetResponse)
	err := c.cc.Invoke(ctx, VetLinkService_AddPet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vetLinkServiceClient) RemovePet(ctx context.Context, in *RemovePetRequest, opts ...grpc.CallOption) (*RemovePetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemovePetResponse)
	err := c.cc.Invoke(ctx, VetLinkService_RemovePet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VetLinkServiceServer is the server API for VetLinkService service.
// All implementations must embed UnimplementedVetLinkServiceServer
// for forward compatibility.
//
// VetLinkService connects pet owners with online veterinarians: account
// registration and login, profile lookups, pet records, the vet online
// status toggle, discovery of reachable vets and two-party realtime chat.
type VetLinkServiceServer interface {
	// Register creates a user account plus its profile row and returns a JWT.
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	// Login authenticates an existing account and returns a JWT.
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	// GetProfile returns the profile row for a user id (chat window header).
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	// CompleteVetProfile records the extended vet profile and creates the
	// matching activity record (offline by default).
	CompleteVetProfile(context.Context, *CompleteVetProfileRequest) (*CompleteVetProfileResponse, error)
	// GetOnlineStatus reads the caller's current online flag.
	GetOnlineStatus(context.Context, *GetOnlineStatusRequest) (*OnlineStatusResponse, error)
	// ToggleOnlineStatus flips the caller's online flag and returns the new value.
	ToggleOnlineStatus(context.Context, *ToggleOnlineStatusRequest) (*OnlineStatusResponse, error)
	// MatchVets streams every currently online vet joined with profile details.
	MatchVets(*MatchVetsRequest, grpc.ServerStreamingServer[MatchVetsResponse]) error
	// OpenChat replays the room history in order and then streams live
	// messages until the client goes away.
	OpenChat(*OpenChatRequest, grpc.ServerStreamingServer[ChatMessage]) error
	// SendMessage persists one message; the saved copy is delivered to every
	// open chat stream for the room, the sender's included.
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	// Pet records for the owner home screen.
	ListPets(context.Context, *ListPetsRequest) (*ListPetsResponse, error)
	AddPet(context.Context, *AddPetRequest) (*AddPetResponse, error)
	RemovePet(context.Context, *RemovePetRequest) (*RemovePetResponse, error)
	mustEmbedUnimplementedVetLinkServiceServer()
}

// UnimplementedVetLinkServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedVetLinkServiceServer struct{}

func (UnimplementedVetLinkServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedVetLinkServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedVetLinkServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedVetLinkServiceServer) CompleteVetProfile(context.Context, *CompleteVetProfileRequest) (*CompleteVetProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteVetProfile not implemented")
}
func (UnimplementedVetLinkServiceServer) GetOnlineStatus(context.Context, *GetOnlineStatusRequest) (*OnlineStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOnlineStatus not implemented")
}
func (UnimplementedVetLinkServiceServer) ToggleOnlineStatus(context.Context, *ToggleOnlineStatusRequest) (*OnlineStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleOnlineStatus not implemented")
}
func (UnimplementedVetLinkServiceServer) MatchVets(*MatchVetsRequest, grpc.ServerStreamingServer[MatchVetsResponse]) error {
	return status.Error(codes.Unimplemented, "method MatchVets not implemented")
}
func (UnimplementedVetLinkServiceServer) OpenChat(*OpenChatRequest, grpc.ServerStreamingServer[ChatMessage]) error {
	return status.Error(codes.Unimplemented, "method OpenChat not implemented")
}
func (UnimplementedVetLinkServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedVetLinkServiceServer) ListPets(context.Context, *ListPetsRequest) (*ListPetsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPets not implemented")
}
func (UnimplementedVetLinkServiceServer) AddPet(context.Context, *AddPetRequest) (*AddPetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddPet not implemented")
}
func (UnimplementedVetLinkServiceServer) RemovePet(context.Context, *RemovePetRequest) (*RemovePetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemovePet not implemented")
}
func (UnimplementedVetLinkServiceServer) mustEmbedUnimplementedVetLinkServiceServer() {}
func (UnimplementedVetLinkServiceServer) testEmbeddedByValue()                        {}

// UnsafeVetLinkServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VetLinkServiceServer will
// result in compilation errors.
type UnsafeVetLinkServiceServer interface {
	mustEmbedUnimplementedVetLinkServiceServer()
}

func RegisterVetLinkServiceServer(s grpc.ServiceRegistrar, srv VetLinkServiceServer) {
	// If the following call panics, it indicates UnimplementedVetLinkServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&VetLinkService_ServiceDesc, srv)
}

func _VetLinkService_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_Register_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_GetProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).GetProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_GetProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).GetProfile(ctx, req.(*GetProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_CompleteVetProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteVetProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).CompleteVetProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_CompleteVetProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).CompleteVetProfile(ctx, req.(*CompleteVetProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_GetOnlineStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOnlineStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).GetOnlineStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_GetOnlineStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).GetOnlineStatus(ctx, req.(*GetOnlineStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_ToggleOnlineStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToggleOnlineStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).ToggleOnlineStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_ToggleOnlineStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).ToggleOnlineStatus(ctx, req.(*ToggleOnlineStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_MatchVets_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(MatchVetsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(VetLinkServiceServer).MatchVets(m, &grpc.GenericServerStream[MatchVetsRequest, MatchVetsResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type VetLinkService_MatchVetsServer = grpc.ServerStreamingServer[MatchVetsResponse]

func _VetLinkService_OpenChat_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(OpenChatRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(VetLinkServiceServer).OpenChat(m, &grpc.GenericServerStream[OpenChatRequest, ChatMessage]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type VetLinkService_OpenChatServer = grpc.ServerStreamingServer[ChatMessage]

func _VetLinkService_SendMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_SendMessage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_ListPets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).ListPets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_ListPets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).ListPets(ctx, req.(*ListPetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_AddPet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddPetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).AddPet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_AddPet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).AddPet(ctx, req.(*AddPetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VetLinkService_RemovePet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemovePetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VetLinkServiceServer).RemovePet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VetLinkService_RemovePet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VetLinkServiceServer).RemovePet(ctx, req.(*RemovePetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VetLinkService_ServiceDesc is the grpc.ServiceDesc for VetLinkService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VetLinkService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "vetlink.v1.VetLinkService",
	HandlerType: (*VetLinkServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _VetLinkService_Register_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _VetLinkService_Login_Handler,
		},
		{
			MethodName: "GetProfile",
			Handler:    _VetLinkService_GetProfile_Handler,
		},
		{
			MethodName: "CompleteVetProfile",
			Handler:    _VetLinkService_CompleteVetProfile_Handler,
		},
		{
			MethodName: "GetOnlineStatus",
			Handler:    _VetLinkService_GetOnlineStatus_Handler,
		},
		{
			MethodName: "ToggleOnlineStatus",
			Handler:    _VetLinkService_ToggleOnlineStatus_Handler,
		},
		{
			MethodName: "SendMessage",
			Handler:    _VetLinkService_SendMessage_Handler,
		},
		{
			MethodName: "ListPets",
			Handler:    _VetLinkService_ListPets_Handler,
		},
		{
			MethodName: "AddPet",
			Handler:    _VetLinkService_AddPet_Handler,
		},
		{
			MethodName: "RemovePet",
			Handler:    _VetLinkService_RemovePet_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "MatchVets",
			Handler:       _VetLinkService_MatchVets_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "OpenChat",
			Handler:       _VetLinkService_OpenChat_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "vetlink/v1/vetlink.proto",
}

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: vetlink/v1/vetlink.proto

package vetlinkv1

import (
	_ "buf.build/gen/go/bufbuild/protovalidate/protocolbuffers/go/buf/validate"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type RegisterRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Email     string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password  string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	FirstName string                 `protobuf:"bytes,3,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName  string                 `protobuf:"bytes,4,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	// Account role, either "owner" or "vet".
	Role          string `protobuf:"bytes,5,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterRequest) Reset() {
	*x = RegisterRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterRequest) ProtoMessage() {}

func (x *RegisterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterRequest.ProtoReflect.Descriptor instead.
func (*RegisterRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{0}
}

func (x *RegisterRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *RegisterRequest) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *RegisterRequest) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *RegisterRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type RegisterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterResponse) Reset() {
	*x = RegisterResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterResponse) ProtoMessage() {}

func (x *RegisterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterResponse.ProtoReflect.Descriptor instead.
func (*RegisterResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *RegisterResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *RegisterResponse) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{2}
}

func (x *LoginRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LoginRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Token         string                 `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ExpiresAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{3}
}

func (x *LoginResponse) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *LoginResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *LoginResponse) GetExpiresAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExpiresAt
	}
	return nil
}

type GetProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileRequest) Reset() {
	*x = GetProfileRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileRequest) ProtoMessage() {}

func (x *GetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileRequest.ProtoReflect.Descriptor instead.
func (*GetProfileRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{4}
}

func (x *GetProfileRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FirstName     string                 `protobuf:"bytes,2,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                 `protobuf:"bytes,3,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Role          string                 `protobuf:"bytes,5,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileResponse) Reset() {
	*x = GetProfileResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileResponse) ProtoMessage() {}

func (x *GetProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileResponse.ProtoReflect.Descriptor instead.
func (*GetProfileResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{5}
}

func (x *GetProfileResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetProfileResponse) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *GetProfileResponse) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *GetProfileResponse) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *GetProfileResponse) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type CompleteVetProfileRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Title       string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Speciality  string                 `protobuf:"bytes,2,opt,name=speciality,proto3" json:"speciality,omitempty"`
	PhoneNumber string                 `protobuf:"bytes,3,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	// Optional; a non-empty link marks the activity record verified.
	CertificationLink string `protobuf:"bytes,4,opt,name=certification_link,json=certificationLink,proto3" json:"certification_link,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *CompleteVetProfileRequest) Reset() {
	*x = CompleteVetProfileRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteVetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteVetProfileRequest) ProtoMessage() {}

func (x *CompleteVetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteVetProfileRequest.ProtoReflect.Descriptor instead.
func (*CompleteVetProfileRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{6}
}

func (x *CompleteVetProfileRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CompleteVetProfileRequest) GetSpeciality() string {
	if x != nil {
		return x.Speciality
	}
	return ""
}

func (x *CompleteVetProfileRequest) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *CompleteVetProfileRequest) GetCertificationLink() string {
	if x != nil {
		return x.CertificationLink
	}
	return ""
}

type CompleteVetProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsVerified    bool                   `protobuf:"varint,1,opt,name=is_verified,json=isVerified,proto3" json:"is_verified,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteVetProfileResponse) Reset() {
	*x = CompleteVetProfileResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteVetProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteVetProfileResponse) ProtoMessage() {}

func (x *CompleteVetProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteVetProfileResponse.ProtoReflect.Descriptor instead.
func (*CompleteVetProfileResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{7}
}

func (x *CompleteVetProfileResponse) GetIsVerified() bool {
	if x != nil {
		return x.IsVerified
	}
	return false
}

type GetOnlineStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOnlineStatusRequest) Reset() {
	*x = GetOnlineStatusRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOnlineStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOnlineStatusRequest) ProtoMessage() {}

func (x *GetOnlineStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOnlineStatusRequest.ProtoReflect.Descriptor instead.
func (*GetOnlineStatusRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{8}
}

type ToggleOnlineStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleOnlineStatusRequest) Reset() {
	*x = ToggleOnlineStatusRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleOnlineStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleOnlineStatusRequest) ProtoMessage() {}

func (x *ToggleOnlineStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleOnlineStatusRequest.ProtoReflect.Descriptor instead.
func (*ToggleOnlineStatusRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{9}
}

type OnlineStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsOnline      bool                   `protobuf:"varint,1,opt,name=is_online,json=isOnline,proto3" json:"is_online,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OnlineStatusResponse) Reset() {
	*x = OnlineStatusResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OnlineStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OnlineStatusResponse) ProtoMessage() {}

func (x *OnlineStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OnlineStatusResponse.ProtoReflect.Descriptor instead.
func (*OnlineStatusResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{10}
}

func (x *OnlineStatusResponse) GetIsOnline() bool {
	if x != nil {
		return x.IsOnline
	}
	return false
}

type MatchVetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchVetsRequest) Reset() {
	*x = MatchVetsRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchVetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchVetsRequest) ProtoMessage() {}

func (x *MatchVetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchVetsRequest.ProtoReflect.Descriptor instead.
func (*MatchVetsRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{11}
}

type MatchVetsResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	UserId            string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FirstName         string                 `protobuf:"bytes,2,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName          string                 `protobuf:"bytes,3,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email             string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Title             string                 `protobuf:"bytes,5,opt,name=title,proto3" json:"title,omitempty"`
	Speciality        string                 `protobuf:"bytes,6,opt,name=speciality,proto3" json:"speciality,omitempty"`
	PhoneNumber       string                 `protobuf:"bytes,7,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	CertificationLink string                 `protobuf:"bytes,8,opt,name=certification_link,json=certificationLink,proto3" json:"certification_link,omitempty"`
	IsVerified        bool                   `protobuf:"varint,9,opt,name=is_verified,json=isVerified,proto3" json:"is_verified,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *MatchVetsResponse) Reset() {
	*x = MatchVetsResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchVetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchVetsResponse) ProtoMessage() {}

func (x *MatchVetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchVetsResponse.ProtoReflect.Descriptor instead.
func (*MatchVetsResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{12}
}

func (x *MatchVetsResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *MatchVetsResponse) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *MatchVetsResponse) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *MatchVetsResponse) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *MatchVetsResponse) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *MatchVetsResponse) GetSpeciality() string {
	if x != nil {
		return x.Speciality
	}
	return ""
}

func (x *MatchVetsResponse) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *MatchVetsResponse) GetCertificationLink() string {
	if x != nil {
		return x.CertificationLink
	}
	return ""
}

func (x *MatchVetsResponse) GetIsVerified() bool {
	if x != nil {
		return x.IsVerified
	}
	return false
}

type OpenChatRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// The other participant's user id; the room id is derived server-side
	// from the caller identity and this value.
	PeerId        string `protobuf:"bytes,1,opt,name=peer_id,json=peerId,proto3" json:"peer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OpenChatRequest) Reset() {
	*x = OpenChatRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OpenChatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpenChatRequest) ProtoMessage() {}

func (x *OpenChatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpenChatRequest.ProtoReflect.Descriptor instead.
func (*OpenChatRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{13}
}

func (x *OpenChatRequest) GetPeerId() string {
	if x != nil {
		return x.PeerId
	}
	return ""
}

type ChatMessage struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	MsgId    string                 `protobuf:"bytes,1,opt,name=msg_id,json=msgId,proto3" json:"msg_id,omitempty"`
	RoomId   string                 `protobuf:"bytes,2,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	SenderId string                 `protobuf:"bytes,3,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Text     string                 `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	// True when the sender is the pet owner side of the room.
	IsOwnerSender bool                   `protobuf:"varint,5,opt,name=is_owner_sender,json=isOwnerSender,proto3" json:"is_owner_sender,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{14}
}

func (x *ChatMessage) GetMsgId() string {
	if x != nil {
		return x.MsgId
	}
	return ""
}

func (x *ChatMessage) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *ChatMessage) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

func (x *ChatMessage) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ChatMessage) GetIsOwnerSender() bool {
	if x != nil {
		return x.IsOwnerSender
	}
	return false
}

func (x *ChatMessage) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type SendMessageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PeerId        string                 `protobuf:"bytes,1,opt,name=peer_id,json=peerId,proto3" json:"peer_id,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageRequest) Reset() {
	*x = SendMessageRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageRequest) ProtoMessage() {}

func (x *SendMessageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[15]
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
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{15}
}

func (x *SendMessageRequest) GetPeerId() string {
	if x != nil {
		return x.PeerId
	}
	return ""
}

func (x *SendMessageRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type SendMessageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MsgId         string                 `protobuf:"bytes,1,opt,name=msg_id,json=msgId,proto3" json:"msg_id,omitempty"`
	RoomId        string                 `protobuf:"bytes,2,opt,name=room_id,json=roomId,proto3" json:"room_id,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SendMessageResponse) Reset() {
	*x = SendMessageResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SendMessageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SendMessageResponse) ProtoMessage() {}

func (x *SendMessageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SendMessageResponse.ProtoReflect.Descriptor instead.
func (*SendMessageResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{16}
}

func (x *SendMessageResponse) GetMsgId() string {
	if x != nil {
		return x.MsgId
	}
	return ""
}

func (x *SendMessageResponse) GetRoomId() string {
	if x != nil {
		return x.RoomId
	}
	return ""
}

func (x *SendMessageResponse) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ListPetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPetsRequest) Reset() {
	*x = ListPetsRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPetsRequest) ProtoMessage() {}

func (x *ListPetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPetsRequest.ProtoReflect.Descriptor instead.
func (*ListPetsRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{17}
}

type Pet struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PetId         string                 `protobuf:"bytes,1,opt,name=pet_id,json=petId,proto3" json:"pet_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Breed         string                 `protobuf:"bytes,4,opt,name=breed,proto3" json:"breed,omitempty"`
	Age           int32                  `protobuf:"varint,5,opt,name=age,proto3" json:"age,omitempty"`
	EyeColor      string                 `protobuf:"bytes,6,opt,name=eye_color,json=eyeColor,proto3" json:"eye_color,omitempty"`
	BodyColor     string                 `protobuf:"bytes,7,opt,name=body_color,json=bodyColor,proto3" json:"body_color,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Pet) Reset() {
	*x = Pet{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Pet) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Pet) ProtoMessage() {}

func (x *Pet) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Pet.ProtoReflect.Descriptor instead.
func (*Pet) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{18}
}

func (x *Pet) GetPetId() string {
	if x != nil {
		return x.PetId
	}
	return ""
}

func (x *Pet) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Pet) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Pet) GetBreed() string {
	if x != nil {
		return x.Breed
	}
	return ""
}

func (x *Pet) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *Pet) GetEyeColor() string {
	if x != nil {
		return x.EyeColor
	}
	return ""
}

func (x *Pet) GetBodyColor() string {
	if x != nil {
		return x.BodyColor
	}
	return ""
}

func (x *Pet) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type ListPetsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pets          []*Pet                 `protobuf:"bytes,1,rep,name=pets,proto3" json:"pets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPetsResponse) Reset() {
	*x = ListPetsResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPetsResponse) ProtoMessage() {}

func (x *ListPetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPetsResponse.ProtoReflect.Descriptor instead.
func (*ListPetsResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{19}
}

func (x *ListPetsResponse) GetPets() []*Pet {
	if x != nil {
		return x.Pets
	}
	return nil
}

type AddPetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Breed         string                 `protobuf:"bytes,3,opt,name=breed,proto3" json:"breed,omitempty"`
	Age           int32                  `protobuf:"varint,4,opt,name=age,proto3" json:"age,omitempty"`
	EyeColor      string                 `protobuf:"bytes,5,opt,name=eye_color,json=eyeColor,proto3" json:"eye_color,omitempty"`
	BodyColor     string                 `protobuf:"bytes,6,opt,name=body_color,json=bodyColor,proto3" json:"body_color,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddPetRequest) Reset() {
	*x = AddPetRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddPetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddPetRequest) ProtoMessage() {}

func (x *AddPetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddPetRequest.ProtoReflect.Descriptor instead.
func (*AddPetRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{20}
}

func (x *AddPetRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddPetRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *AddPetRequest) GetBreed() string {
	if x != nil {
		return x.Breed
	}
	return ""
}

func (x *AddPetRequest) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *AddPetRequest) GetEyeColor() string {
	if x != nil {
		return x.EyeColor
	}
	return ""
}

func (x *AddPetRequest) GetBodyColor() string {
	if x != nil {
		return x.BodyColor
	}
	return ""
}

type AddPetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pet           *Pet                   `protobuf:"bytes,1,opt,name=pet,proto3" json:"pet,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddPetResponse) Reset() {
	*x = AddPetResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddPetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddPetResponse) ProtoMessage() {}

func (x *AddPetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddPetResponse.ProtoReflect.Descriptor instead.
func (*AddPetResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{21}
}

func (x *AddPetResponse) GetPet() *Pet {
	if x != nil {
		return x.Pet
	}
	return nil
}

type RemovePetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PetId         string                 `protobuf:"bytes,1,opt,name=pet_id,json=petId,proto3" json:"pet_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemovePetRequest) Reset() {
	*x = RemovePetRequest{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemovePetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemovePetRequest) ProtoMessage() {}

func (x *RemovePetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemovePetRequest.ProtoReflect.Descriptor instead.
func (*RemovePetRequest) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{22}
}

func (x *RemovePetRequest) GetPetId() string {
	if x != nil {
		return x.PetId
	}
	return ""
}

type RemovePetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemovePetResponse) Reset() {
	*x = RemovePetResponse{}
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemovePetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemovePetResponse) ProtoMessage() {}

func (x *RemovePetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vetlink_v1_vetlink_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemovePetResponse.ProtoReflect.Descriptor instead.
func (*RemovePetResponse) Descriptor() ([]byte, []int) {
	return file_vetlink_v1_vetlink_proto_rawDescGZIP(), []int{23}
}

var File_vetlink_v1_vetlink_proto protoreflect.FileDescriptor

const file_vetlink_v1_vetlink_proto_rawDesc = "" +
	"\n" +
	"\x18vetlink/v1/vetlink.proto\x12\n" +
	"vetlink.v1\x1a\x1bbuf/validate/validate.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xca\x01\n" +
	"\x0fRegisterRequest\x12\x1d\n" +
	"\x05email\x18\x01 \x01(\tB\a\xbaH\x04r\x02`\x01R\x05email\x12#\n" +
	"\bpassword\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\bR\bpassword\x12&\n" +
	"\n" +
	"first_name\x18\x03 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\tfirstName\x12$\n" +
	"\tlast_name\x18\x04 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\blastName\x12%\n" +
	"\x04role\x18\x05 \x01(\tB\x11\xbaH\x0er\fR\x05ownerR\x03vetR\x04role\"|\n" +
	"\x10RegisterResponse\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x129\n" +
	"\n" +
	"expires_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"R\n" +
	"\fLoginRequest\x12\x1d\n" +
	"\x05email\x18\x01 \x01(\tB\a\xbaH\x04r\x02`\x01R\x05email\x12#\n" +
	"\bpassword\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\bpassword\"y\n" +
	"\rLoginResponse\x12\x14\n" +
	"\x05token\x18\x01 \x01(\tR\x05token\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x129\n" +
	"\n" +
	"expires_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\texpiresAt\"5\n" +
	"\x11GetProfileRequest\x12 \n" +
	"\auser_id\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x06userId\"\x93\x01\n" +
	"\x12GetProfileResponse\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"first_name\x18\x02 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x03 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x12\n" +
	"\x04role\x18\x05 \x01(\tR\x04role\"\xbe\x01\n" +
	"\x19CompleteVetProfileRequest\x12\x1d\n" +
	"\x05title\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x05title\x12'\n" +
	"\n" +
	"speciality\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\n" +
	"speciality\x12*\n" +
	"\fphone_number\x18\x03 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\vphoneNumber\x12-\n" +
	"\x12certification_link\x18\x04 \x01(\tR\x11certificationLink\"=\n" +
	"\x1aCompleteVetProfileResponse\x12\x1f\n" +
	"\vis_verified\x18\x01 \x01(\bR\n" +
	"isVerified\"\x18\n" +
	"\x16GetOnlineStatusRequest\"\x1b\n" +
	"\x19ToggleOnlineStatusRequest\"3\n" +
	"\x14OnlineStatusResponse\x12\x1b\n" +
	"\tis_online\x18\x01 \x01(\bR\bisOnline\"\x12\n" +
	"\x10MatchVetsRequest\"\xa7\x02\n" +
	"\x11MatchVetsResponse\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"first_name\x18\x02 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x03 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x14\n" +
	"\x05title\x18\x05 \x01(\tR\x05title\x12\x1e\n" +
	"\n" +
	"speciality\x18\x06 \x01(\tR\n" +
	"speciality\x12!\n" +
	"\fphone_number\x18\a \x01(\tR\vphoneNumber\x12-\n" +
	"\x12certification_link\x18\b \x01(\tR\x11certificationLink\x12\x1f\n" +
	"\vis_verified\x18\t \x01(\bR\n" +
	"isVerified\"3\n" +
	"\x0fOpenChatRequest\x12 \n" +
	"\apeer_id\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x06peerId\"\xd1\x01\n" +
	"\vChatMessage\x12\x15\n" +
	"\x06msg_id\x18\x01 \x01(\tR\x05msgId\x12\x17\n" +
	"\aroom_id\x18\x02 \x01(\tR\x06roomId\x12\x1b\n" +
	"\tsender_id\x18\x03 \x01(\tR\bsenderId\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12&\n" +
	"\x0fis_owner_sender\x18\x05 \x01(\bR\risOwnerSender\x129\n" +
	"\n" +
	"created_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"J\n" +
	"\x12SendMessageRequest\x12 \n" +
	"\apeer_id\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x06peerId\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"\x80\x01\n" +
	"\x13SendMessageResponse\x12\x15\n" +
	"\x06msg_id\x18\x01 \x01(\tR\x05msgId\x12\x17\n" +
	"\aroom_id\x18\x02 \x01(\tR\x06roomId\x129\n" +
	"\n" +
	"created_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x11\n" +
	"\x0fListPetsRequest\"\xe3\x01\n" +
	"\x03Pet\x12\x15\n" +
	"\x06pet_id\x18\x01 \x01(\tR\x05petId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x14\n" +
	"\x05breed\x18\x04 \x01(\tR\x05breed\x12\x10\n" +
	"\x03age\x18\x05 \x01(\x05R\x03age\x12\x1b\n" +
	"\teye_color\x18\x06 \x01(\tR\beyeColor\x12\x1d\n" +
	"\n" +
	"body_color\x18\a \x01(\tR\tbodyColor\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"7\n" +
	"\x10ListPetsResponse\x12#\n" +
	"\x04pets\x18\x01 \x03(\v2\x0f.vetlink.v1.PetR\x04pets\"\xb6\x01\n" +
	"\rAddPetRequest\x12\x1b\n" +
	"\x04name\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x04name\x12\x1b\n" +
	"\x04type\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x04type\x12\x14\n" +
	"\x05breed\x18\x03 \x01(\tR\x05breed\x12\x19\n" +
	"\x03age\x18\x04 \x01(\x05B\a\xbaH\x04\x1a\x02(\x00R\x03age\x12\x1b\n" +
	"\teye_color\x18\x05 \x01(\tR\beyeColor\x12\x1d\n" +
	"\n" +
	"body_color\x18\x06 \x01(\tR\tbodyColor\"3\n" +
	"\x0eAddPetResponse\x12!\n" +
	"\x03pet\x18\x01 \x01(\v2\x0f.vetlink.v1.PetR\x03pet\"2\n" +
	"\x10RemovePetRequest\x12\x1e\n" +
	"\x06pet_id\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x05petId\"\x13\n" +
	"\x11RemovePetResponse2\xb1\a\n" +
	"\x0eVetLinkService\x12E\n" +
	"\bRegister\x12\x1b.vetlink.v1.RegisterRequest\x1a\x1c.vetlink.v1.RegisterResponse\x12<\n" +
	"\x05Login\x12\x18.vetlink.v1.LoginRequest\x1a\x19.vetlink.v1.LoginResponse\x12K\n" +
	"\n" +
	"GetProfile\x12\x1d.vetlink.v1.GetProfileRequest\x1a\x1e.vetlink.v1.GetProfileResponse\x12c\n" +
	"\x12CompleteVetProfile\x12%.vetlink.v1.CompleteVetProfileRequest\x1a&.vetlink.v1.CompleteVetProfileResponse\x12W\n" +
	"\x0fGetOnlineStatus\x12\".vetlink.v1.GetOnlineStatusRequest\x1a .vetlink.v1.OnlineStatusResponse\x12]\n" +
	"\x12ToggleOnlineStatus\x12%.vetlink.v1.ToggleOnlineStatusRequest\x1a .vetlink.v1.OnlineStatusResponse\x12J\n" +
	"\tMatchVets\x12\x1c.vetlink.v1.MatchVetsRequest\x1a\x1d.vetlink.v1.MatchVetsResponse0\x01\x12B\n" +
	"\bOpenChat\x12\x1b.vetlink.v1.OpenChatRequest\x1a\x17.vetlink.v1.ChatMessage0\x01\x12N\n" +
	"\vSendMessage\x12\x1e.vetlink.v1.SendMessageRequest\x1a\x1f.vetlink.v1.SendMessageResponse\x12E\n" +
	"\bListPets\x12\x1b.vetlink.v1.ListPetsRequest\x1a\x1c.vetlink.v1.ListPetsResponse\x12?\n" +
	"\x06AddPet\x12\x19.vetlink.v1.AddPetRequest\x1a\x1a.vetlink.v1.AddPetResponse\x12H\n" +
	"\tRemovePet\x12\x1c.vetlink.v1.RemovePetRequest\x1a\x1d.vetlink.v1.RemovePetResponseB<Z:github.com/petfolk/vetLink-gRPC/proto/vetlink/v1;vetlinkv1b\x06proto3"

var (
	file_vetlink_v1_vetlink_proto_rawDescOnce sync.Once
	file_vetlink_v1_vetlink_proto_rawDescData []byte
)

func file_vetlink_v1_vetlink_proto_rawDescGZIP() []byte {
	file_vetlink_v1_vetlink_proto_rawDescOnce.Do(func() {
		file_vetlink_v1_vetlink_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_vetlink_v1_vetlink_proto_rawDesc), len(file_vetlink_v1_vetlink_proto_rawDesc)))
	})
	return file_vetlink_v1_vetlink_proto_rawDescData
}

var file_vetlink_v1_vetlink_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_vetlink_v1_vetlink_proto_goTypes = []any{
	(*RegisterRequest)(nil),            // 0: vetlink.v1.RegisterRequest
	(*RegisterResponse)(nil),           // 1: vetlink.v1.RegisterResponse
	(*LoginRequest)(nil),               // 2: vetlink.v1.LoginRequest
	(*LoginResponse)(nil),              // 3: vetlink.v1.LoginResponse
	(*GetProfileRequest)(nil),          // 4: vetlink.v1.GetProfileRequest
	(*GetProfileResponse)(nil),         // 5: vetlink.v1.GetProfileResponse
	(*CompleteVetProfileRequest)(nil),  // 6: vetlink.v1.CompleteVetProfileRequest
	(*CompleteVetProfileResponse)(nil), // 7: vetlink.v1.CompleteVetProfileResponse
	(*GetOnlineStatusRequest)(nil),     // 8: vetlink.v1.GetOnlineStatusRequest
	(*ToggleOnlineStatusRequest)(nil),  // 9: vetlink.v1.ToggleOnlineStatusRequest
	(*OnlineStatusResponse)(nil),       // 10: vetlink.v1.OnlineStatusResponse
	(*MatchVetsRequest)(nil),           // 11: vetlink.v1.MatchVetsRequest
	(*MatchVetsResponse)(nil),          // 12: vetlink.v1.MatchVetsResponse
	(*OpenChatRequest)(nil),            // 13: vetlink.v1.OpenChatRequest
	(*ChatMessage)(nil),                // 14: vetlink.v1.ChatMessage
	(*SendMessageRequest)(nil),         // 15: vetlink.v1.SendMessageRequest
	(*SendMessageResponse)(nil),        // 16: vetlink.v1.SendMessageResponse
	(*ListPetsRequest)(nil),            // 17: vetlink.v1.ListPetsRequest
	(*Pet)(nil),                        // 18: vetlink.v1.Pet
	(*ListPetsResponse)(nil),           // 19: vetlink.v1.ListPetsResponse
	(*AddPetRequest)(nil),              // 20: vetlink.v1.AddPetRequest
	(*AddPetResponse)(nil),             // 21: vetlink.v1.AddPetResponse
	(*RemovePetRequest)(nil),           // 22: vetlink.v1.RemovePetRequest
	(*RemovePetResponse)(nil),          // 23: vetlink.v1.RemovePetResponse
	(*timestamppb.Timestamp)(nil),      // 24: google.protobuf.Timestamp
}
var file_vetlink_v1_vetlink_proto_depIdxs = []int32{
	24, // 0: vetlink.v1.RegisterResponse.expires_at:type_name -> google.protobuf.Timestamp
	24, // 1: vetlink.v1.LoginResponse.expires_at:type_name -> google.protobuf.Timestamp
	24, // 2: vetlink.v1.ChatMessage.created_at:type_name -> google.protobuf.Timestamp
	24, // 3: vetlink.v1.SendMessageResponse.created_at:type_name -> google.protobuf.Timestamp
	24, // 4: vetlink.v1.Pet.created_at:type_name -> google.protobuf.Timestamp
	18, // 5: vetlink.v1.ListPetsResponse.pets:type_name -> vetlink.v1.Pet
	18, // 6: vetlink.v1.AddPetResponse.pet:type_name -> vetlink.v1.Pet
	0,  // 7: vetlink.v1.VetLinkService.Register:input_type -> vetlink.v1.RegisterRequest
	2,  // 8: vetlink.v1.VetLinkService.Login:input_type -> vetlink.v1.LoginRequest
	4,  // 9: vetlink.v1.VetLinkService.GetProfile:input_type -> vetlink.v1.GetProfileRequest
	6,  // 10: vetlink.v1.VetLinkService.CompleteVetProfile:input_type -> vetlink.v1.CompleteVetProfileRequest
	8,  // 11: vetlink.v1.VetLinkService.GetOnlineStatus:input_type -> vetlink.v1.GetOnlineStatusRequest
	9,  // 12: vetlink.v1.VetLinkService.ToggleOnlineStatus:input_type -> vetlink.v1.ToggleOnlineStatusRequest
	11, // 13: vetlink.v1.VetLinkService.MatchVets:input_type -> vetlink.v1.MatchVetsRequest
	13, // 14: vetlink.v1.VetLinkService.OpenChat:input_type -> vetlink.v1.OpenChatRequest
	15, // 15: vetlink.v1.VetLinkService.SendMessage:input_type -> vetlink.v1.SendMessageRequest
	17, // 16: vetlink.v1.VetLinkService.ListPets:input_type -> vetlink.v1.ListPetsRequest
	20, // 17: vetlink.v1.VetLinkService.AddPet:input_type -> vetlink.v1.AddPetRequest
	22, // 18: vetlink.v1.VetLinkService.RemovePet:input_type -> vetlink.v1.RemovePetRequest
	1,  // 19: vetlink.v1.VetLinkService.Register:output_type -> vetlink.v1.RegisterResponse
	3,  // 20: vetlink.v1.VetLinkService.Login:output_type -> vetlink.v1.LoginResponse
	5,  // 21: vetlink.v1.VetLinkService.GetProfile:output_type -> vetlink.v1.GetProfileResponse
	7,  // 22: vetlink.v1.VetLinkService.CompleteVetProfile:output_type -> vetlink.v1.CompleteVetProfileResponse
	10, // 23: vetlink.v1.VetLinkService.GetOnlineStatus:output_type -> vetlink.v1.OnlineStatusResponse
	10, // 24: vetlink.v1.VetLinkService.ToggleOnlineStatus:output_type -> vetlink.v1.OnlineStatusResponse
	12, // 25: vetlink.v1.VetLinkService.MatchVets:output_type -> vetlink.v1.MatchVetsResponse
	14, // 26: vetlink.v1.VetLinkService.OpenChat:output_type -> vetlink.v1.ChatMessage
	16, // 27: vetlink.v1.VetLinkService.SendMessage:output_type -> vetlink.v1.SendMessageResponse
	19, // 28: vetlink.v1.VetLinkService.ListPets:output_type -> vetlink.v1.ListPetsResponse
	21, // 29: vetlink.v1.VetLinkService.AddPet:output_type -> vetlink.v1.AddPetResponse
	23, // 30: vetlink.v1.VetLinkService.RemovePet:output_type -> vetlink.v1.RemovePetResponse
	19, // [19:31] is the sub-list for method output_type
	7,  // [7:19] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_vetlink_v1_vetlink_proto_init() }
func file_vetlink_v1_vetlink_proto_init() {
	if File_vetlink_v1_vetlink_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_vetlink_v1_vetlink_proto_rawDesc), len(file_vetlink_v1_vetlink_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_vetlink_v1_vetlink_proto_goTypes,
		DependencyIndexes: file_vetlink_v1_vetlink_proto_depIdxs,
		MessageInfos:      file_vetlink_v1_vetlink_proto_msgTypes,
	}.Build()
	File_vetlink_v1_vetlink_proto = out.File
	file_vetlink_v1_vetlink_proto_goTypes = nil
	file_vetlink_v1_vetlink_proto_depIdxs = nil
}

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: geoloader/v1/geoloader.proto

package geoloaderv1

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

type SubmitUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`                                     // local path of the dataset payload
	Mimetype      string                 `protobuf:"bytes,2,opt,name=mimetype,proto3" json:"mimetype,omitempty"`                             // declared media type; routes the workflow
	MetadataPath  string                 `protobuf:"bytes,3,opt,name=metadata_path,json=metadataPath,proto3" json:"metadata_path,omitempty"` // optional FGDC XML document
	Async         bool                   `protobuf:"varint,4,opt,name=async,proto3" json:"async,omitempty"`                                  // queue instead of running inline
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitUploadRequest) Reset() {
	*x = SubmitUploadRequest{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitUploadRequest) ProtoMessage() {}

func (x *SubmitUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitUploadRequest.ProtoReflect.Descriptor instead.
func (*SubmitUploadRequest) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitUploadRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *SubmitUploadRequest) GetMimetype() string {
	if x != nil {
		return x.Mimetype
	}
	return ""
}

func (x *SubmitUploadRequest) GetMetadataPath() string {
	if x != nil {
		return x.MetadataPath
	}
	return ""
}

func (x *SubmitUploadRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type SubmitUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitUploadResponse) Reset() {
	*x = SubmitUploadResponse{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitUploadResponse) ProtoMessage() {}

func (x *SubmitUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitUploadResponse.ProtoReflect.Descriptor instead.
func (*SubmitUploadResponse) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitUploadResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitUploadResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SubmitUploadResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Format        string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,7,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{2}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Job) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"` // optional filter
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{5}
}

func (x *ListJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{6}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`                     // optional filter
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsRequest) Reset() {
	*x = ExportJobsRequest{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsRequest) ProtoMessage() {}

func (x *ExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{7}
}

func (x *ExportJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsResponse) Reset() {
	*x = ExportJobsResponse{}
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsResponse) ProtoMessage() {}

func (x *ExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_geoloader_v1_geoloader_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_geoloader_v1_geoloader_proto_rawDescGZIP(), []int{8}
}

func (x *ExportJobsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_geoloader_v1_geoloader_proto protoreflect.FileDescriptor

const file_geoloader_v1_geoloader_proto_rawDesc = "" +
	"\n" +
	"\x1cgeoloader/v1/geoloader.proto\x12\fgeoloader.v1\"\x80\x01\n" +
	"\x13SubmitUploadRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1a\n" +
	"\bmimetype\x18\x02 \x01(\tR\bmimetype\x12#\n" +
	"\rmetadata_path\x18\x03 \x01(\tR\fmetadataPath\x12\x14\n" +
	"\x05async\x18\x04 \x01(\bR\x05async\"[\n" +
	"\x14SubmitUploadResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\"\xbe\x01\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vfinished_at\x18\a \x01(\tR\n" +
	"finishedAt\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"5\n" +
	"\x0eGetJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.geoloader.v1.JobR\x03job\")\n" +
	"\x0fListJobsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"9\n" +
	"\x10ListJobsResponse\x12%\n" +
	"\x04jobs\x18\x01 \x03(\v2\x11.geoloader.v1.JobR\x04jobs\"a\n" +
	"\x11ExportJobsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"(\n" +
	"\x12ExportJobsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc7\x02\n" +
	"\rUploadService\x12U\n" +
	"\fSubmitUpload\x12!.geoloader.v1.SubmitUploadRequest\x1a\".geoloader.v1.SubmitUploadResponse\x12C\n" +
	"\x06GetJob\x12\x1b.geoloader.v1.GetJobRequest\x1a\x1c.geoloader.v1.GetJobResponse\x12I\n" +
	"\bListJobs\x12\x1d.geoloader.v1.ListJobsRequest\x1a\x1e.geoloader.v1.ListJobsResponse\x12O\n" +
	"\n" +
	"ExportJobs\x12\x1f.geoloader.v1.ExportJobsRequest\x1a .geoloader.v1.ExportJobsResponseBFZDgithub.com/jharrell-gis/geoloader/gen/proto/geoloader/v1;geoloaderv1b\x06proto3"

var (
	file_geoloader_v1_geoloader_proto_rawDescOnce sync.Once
	file_geoloader_v1_geoloader_proto_rawDescData []byte
)

func file_geoloader_v1_geoloader_proto_rawDescGZIP() []byte {
	file_geoloader_v1_geoloader_proto_rawDescOnce.Do(func() {
		file_geoloader_v1_geoloader_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_geoloader_v1_geoloader_proto_rawDesc), len(file_geoloader_v1_geoloader_proto_rawDesc)))
	})
	return file_geoloader_v1_geoloader_proto_rawDescData
}

var file_geoloader_v1_geoloader_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_geoloader_v1_geoloader_proto_goTypes = []any{
	(*SubmitUploadRequest)(nil),  // 0: geoloader.v1.SubmitUploadRequest
	(*SubmitUploadResponse)(nil), // 1: geoloader.v1.SubmitUploadResponse
	(*Job)(nil),                  // 2: geoloader.v1.Job
	(*GetJobRequest)(nil),        // 3: geoloader.v1.GetJobRequest
	(*GetJobResponse)(nil),       // 4: geoloader.v1.GetJobResponse
	(*ListJobsRequest)(nil),      // 5: geoloader.v1.ListJobsRequest
	(*ListJobsResponse)(nil),     // 6: geoloader.v1.ListJobsResponse
	(*ExportJobsRequest)(nil),    // 7: geoloader.v1.ExportJobsRequest
	(*ExportJobsResponse)(nil),   // 8: geoloader.v1.ExportJobsResponse
}
var file_geoloader_v1_geoloader_proto_depIdxs = []int32{
	2, // 0: geoloader.v1.GetJobResponse.job:type_name -> geoloader.v1.Job
	2, // 1: geoloader.v1.ListJobsResponse.jobs:type_name -> geoloader.v1.Job
	0, // 2: geoloader.v1.UploadService.SubmitUpload:input_type -> geoloader.v1.SubmitUploadRequest
	3, // 3: geoloader.v1.UploadService.GetJob:input_type -> geoloader.v1.GetJobRequest
	5, // 4: geoloader.v1.UploadService.ListJobs:input_type -> geoloader.v1.ListJobsRequest
	7, // 5: geoloader.v1.UploadService.ExportJobs:input_type -> geoloader.v1.ExportJobsRequest
	1, // 6: geoloader.v1.UploadService.SubmitUpload:output_type -> geoloader.v1.SubmitUploadResponse
	4, // 7: geoloader.v1.UploadService.GetJob:output_type -> geoloader.v1.GetJobResponse
	6, // 8: geoloader.v1.UploadService.ListJobs:output_type -> geoloader.v1.ListJobsResponse
	8, // 9: geoloader.v1.UploadService.ExportJobs:output_type -> geoloader.v1.ExportJobsResponse
	6, // [6:10] is the sub-list for method output_type
	2, // [2:6] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_geoloader_v1_geoloader_proto_init() }
func file_geoloader_v1_geoloader_proto_init() {
	if File_geoloader_v1_geoloader_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_geoloader_v1_geoloader_proto_rawDesc), len(file_geoloader_v1_geoloader_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_geoloader_v1_geoloader_proto_goTypes,
		DependencyIndexes: file_geoloader_v1_geoloader_proto_depIdxs,
		MessageInfos:      file_geoloader_v1_geoloader_proto_msgTypes,
	}.Build()
	File_geoloader_v1_geoloader_proto = out.File
	file_geoloader_v1_geoloader_proto_goTypes = nil
	file_geoloader_v1_geoloader_proto_depIdxs = nil
}

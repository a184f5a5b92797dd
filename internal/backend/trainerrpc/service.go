package trainerrpc

import (
	"context"

	"google.golang.org/grpc"
)

// TrainerServiceServer is the server side of the trainer contract. The facade
// itself is only a client; this side exists for in-process backend stubs and
// for anyone hosting the service with the same JSON codec.
type TrainerServiceServer interface {
	GetTrainerById(ctx context.Context, req *TrainerByIDRequest) (*TrainerWire, error)
	GetAllTrainersByName(req *TrainersByNameRequest, stream TrainerService_GetAllTrainersByNameServer) error
	CreateTrainers(stream TrainerService_CreateTrainersServer) error
	UpdateTrainer(ctx context.Context, req *UpdateTrainerRequest) (*TrainerWire, error)
	DeleteTrainer(ctx context.Context, req *TrainerByIDRequest) (*DeleteTrainerResponse, error)
}

type TrainerService_GetAllTrainersByNameServer interface {
	Send(*TrainerWire) error
	grpc.ServerStream
}

type trainersByNameServer struct {
	grpc.ServerStream
}

func (s *trainersByNameServer) Send(w *TrainerWire) error {
	return s.ServerStream.SendMsg(w)
}

type TrainerService_CreateTrainersServer interface {
	Recv() (*CreateTrainerRequest, error)
	SendAndClose(*CreateTrainersResponse) error
	grpc.ServerStream
}

type createTrainersServer struct {
	grpc.ServerStream
}

func (s *createTrainersServer) Recv() (*CreateTrainerRequest, error) {
	req := new(CreateTrainerRequest)
	if err := s.ServerStream.RecvMsg(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *createTrainersServer) SendAndClose(resp *CreateTrainersResponse) error {
	return s.ServerStream.SendMsg(resp)
}

func RegisterTrainerServiceServer(s grpc.ServiceRegistrar, srv TrainerServiceServer) {
	s.RegisterService(&trainerServiceDesc, srv)
}

func getTrainerByIDHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TrainerByIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrainerServiceServer).GetTrainerById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetByID}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrainerServiceServer).GetTrainerById(ctx, req.(*TrainerByIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func updateTrainerHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateTrainerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrainerServiceServer).UpdateTrainer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodUpdate}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrainerServiceServer).UpdateTrainer(ctx, req.(*UpdateTrainerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteTrainerHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TrainerByIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrainerServiceServer).DeleteTrainer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodDelete}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TrainerServiceServer).DeleteTrainer(ctx, req.(*TrainerByIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getAllTrainersByNameHandler(srv any, stream grpc.ServerStream) error {
	req := new(TrainersByNameRequest)
	if err := stream.RecvMsg(req); err != nil {
		return err
	}
	return srv.(TrainerServiceServer).GetAllTrainersByName(req, &trainersByNameServer{stream})
}

func createTrainersHandler(srv any, stream grpc.ServerStream) error {
	return srv.(TrainerServiceServer).CreateTrainers(&createTrainersServer{stream})
}

var trainerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*TrainerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetTrainerById", Handler: getTrainerByIDHandler},
		{MethodName: "UpdateTrainer", Handler: updateTrainerHandler},
		{MethodName: "DeleteTrainer", Handler: deleteTrainerHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "GetAllTrainersByName", Handler: getAllTrainersByNameHandler, ServerStreams: true},
		{StreamName: "CreateTrainers", Handler: createTrainersHandler, ClientStreams: true},
	},
	Metadata: "proto/trainer.proto",
}

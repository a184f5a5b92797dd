package trainerrpc

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"pokedex/internal/backend"
	"pokedex/internal/domain"
	"pokedex/internal/domain/models"
	"pokedex/internal/logger"
)

const serviceName = "pokedex.trainers.TrainerService"

const (
	methodGetByID      = "/" + serviceName + "/GetTrainerById"
	methodStreamByName = "/" + serviceName + "/GetAllTrainersByName"
	methodBulkCreate   = "/" + serviceName + "/CreateTrainers"
	methodUpdate       = "/" + serviceName + "/UpdateTrainer"
	methodDelete       = "/" + serviceName + "/DeleteTrainer"
)

// Client implements backend.TrainerBackend over one shared gRPC connection.
// The connection is safe for concurrent use and lives for the whole process.
type Client struct {
	cc  *grpc.ClientConn
	log *logger.Logger
}

// Dial connects to the trainer service. The connection is lazy; the first
// call establishes the transport.
func Dial(addr string, log *logger.Logger) (*Client, error) {
	cc, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
	)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, log: log}, nil
}

// NewClient wraps an existing connection; used with in-process listeners in
// tests.
func NewClient(cc *grpc.ClientConn, log *logger.Logger) *Client {
	return &Client{cc: cc, log: log}
}

func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) GetByID(ctx context.Context, id string) (models.Trainer, error) {
	var resp TrainerWire
	if err := c.cc.Invoke(ctx, methodGetByID, &TrainerByIDRequest{ID: id}, &resp); err != nil {
		return models.Trainer{}, domain.ClassifyRPC(err)
	}
	return resp.ToModel(), nil
}

func (c *Client) Update(ctx context.Context, t models.Trainer) error {
	req := &UpdateTrainerRequest{
		ID:        t.ID,
		Name:      t.Name,
		Age:       int32(t.Age),
		Birthdate: t.BirthDate,
		Medals:    medalsToWire(t.Medals),
	}
	var resp TrainerWire
	if err := c.cc.Invoke(ctx, methodUpdate, req, &resp); err != nil {
		return domain.ClassifyRPC(err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	var resp DeleteTrainerResponse
	if err := c.cc.Invoke(ctx, methodDelete, &TrainerByIDRequest{ID: id}, &resp); err != nil {
		return domain.ClassifyRPC(err)
	}
	if !resp.Success {
		return domain.NotFound("trainer", id)
	}
	return nil
}

// StreamByName opens the server stream and hands back a lazy sequence.
// Closing the stream cancels the call, which releases the transport within
// one round trip even when the caller abandons consumption early.
func (c *Client) StreamByName(ctx context.Context, name string) (backend.TrainerStream, error) {
	ctx, cancel := context.WithCancel(ctx)
	desc := &grpc.StreamDesc{StreamName: "GetAllTrainersByName", ServerStreams: true}
	cs, err := c.cc.NewStream(ctx, desc, methodStreamByName)
	if err != nil {
		cancel()
		return nil, domain.ClassifyRPC(err)
	}
	if err := cs.SendMsg(&TrainersByNameRequest{Name: name}); err != nil {
		cancel()
		return nil, domain.ClassifyRPC(err)
	}
	if err := cs.CloseSend(); err != nil {
		cancel()
		return nil, domain.ClassifyRPC(err)
	}
	return &trainerStream{cs: cs, cancel: cancel}, nil
}

type trainerStream struct {
	cs     grpc.ClientStream
	cancel context.CancelFunc
}

func (s *trainerStream) Recv() (models.Trainer, error) {
	var w TrainerWire
	if err := s.cs.RecvMsg(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Trainer{}, io.EOF
		}
		return models.Trainer{}, domain.ClassifyRPC(err)
	}
	return w.ToModel(), nil
}

func (s *trainerStream) Close() error {
	s.cancel()
	return nil
}

// BulkCreate streams the items in caller order, completes the send side
// exactly once and waits for the summary. A send failure mid-stream falls
// through to RecvMsg, which carries the real status.
func (c *Client) BulkCreate(ctx context.Context, trainers []models.Trainer) (backend.BulkResult, error) {
	desc := &grpc.StreamDesc{StreamName: "CreateTrainers", ClientStreams: true}
	cs, err := c.cc.NewStream(ctx, desc, methodBulkCreate)
	if err != nil {
		return backend.BulkResult{}, domain.ClassifyRPC(err)
	}
	for _, t := range trainers {
		req := &CreateTrainerRequest{
			Name:      t.Name,
			Age:       int32(t.Age),
			Birthdate: t.BirthDate,
			Medals:    medalsToWire(t.Medals),
		}
		if err := cs.SendMsg(req); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return backend.BulkResult{}, domain.ClassifyRPC(err)
		}
	}
	if err := cs.CloseSend(); err != nil {
		return backend.BulkResult{}, domain.ClassifyRPC(err)
	}
	var resp CreateTrainersResponse
	if err := cs.RecvMsg(&resp); err != nil {
		return backend.BulkResult{}, domain.ClassifyRPC(err)
	}
	created := make([]models.Trainer, 0, len(resp.Trainers))
	for _, w := range resp.Trainers {
		created = append(created, w.ToModel())
	}
	return backend.BulkResult{SuccessCount: int(resp.SuccessCount), Created: created}, nil
}

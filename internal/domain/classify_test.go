package domain

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassifyFault(t *testing.T) {
	cases := []struct {
		name   string
		reason string
		kind   Kind
	}{
		{"not found", "Pokemon not found", KindNotFound},
		{"no id found", "No Pokemon with that ID found", KindNotFound},
		{"already exists", "Pokemon with name Pikachu already exists", KindAlreadyExists},
		{"required field", "Name: name is required", KindValidation},
		{"range", "Level must be between 1 and 100", KindValidation},
		{"invalid", "invalid stats payload", KindValidation},
		{"unrecognized", "flux capacitor overloaded", KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ClassifyFault(tc.reason)
			assert.Equal(t, tc.kind, err.Kind)
			if tc.kind == KindUnknown {
				assert.Equal(t, tc.reason, err.Message, "unknown reasons keep their text verbatim")
			}
		})
	}
}

func TestClassifyFaultFieldExtraction(t *testing.T) {
	err := ClassifyFault("Name: name is required")
	require.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, []string{"name is required"}, err.Fields["name"])

	// unstructured reasons aggregate under the generic key
	err = ClassifyFault("stats are required")
	require.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, []string{"stats are required"}, err.Fields["request"])
}

func TestClassifyRPC(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind Kind
	}{
		{"not found", status.Error(codes.NotFound, "trainer with id 42 not found"), KindNotFound},
		{"already exists", status.Error(codes.AlreadyExists, "trainer already exists"), KindAlreadyExists},
		{"invalid argument", status.Error(codes.InvalidArgument, "age: must be over 18"), KindValidation},
		{"unavailable", status.Error(codes.Unavailable, "connection refused"), KindUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "deadline exceeded"), KindUnavailable},
		{"internal", status.Error(codes.Internal, "boom"), KindUnknown},
		{"context deadline", context.DeadlineExceeded, KindUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, ClassifyRPC(tc.err).Kind)
		})
	}
}

func TestClassifyHTTP(t *testing.T) {
	assert.Equal(t, KindNotFound, ClassifyHTTP(404, "gone").Kind)
	assert.Equal(t, KindAlreadyExists, ClassifyHTTP(409, "dup").Kind)
	assert.Equal(t, KindValidation, ClassifyHTTP(400, "bad").Kind)
	assert.Equal(t, KindUnavailable, ClassifyHTTP(503, "down").Kind)
	assert.Equal(t, KindUnavailable, ClassifyHTTP(502, "bad gateway").Kind)
	assert.Equal(t, KindUnknown, ClassifyHTTP(500, "boom").Kind)
}

func TestClassifyTransport(t *testing.T) {
	refused := &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	assert.Equal(t, KindUnavailable, ClassifyTransport(refused).Kind)
	assert.Equal(t, KindUnavailable, ClassifyTransport(context.Canceled).Kind)
	assert.Equal(t, KindUnknown, ClassifyTransport(errors.New("weird")).Kind)
}

func TestUpgrade(t *testing.T) {
	raced := Unknown("pokemon with name Ash already exists")
	upgraded := Upgrade(raced)
	assert.True(t, IsAlreadyExists(upgraded), "unknown carrying a conflict message is upgraded")

	missing := Upgrade(Unknown("record not found in shard 3"))
	assert.True(t, IsNotFound(missing))

	// precision is never downgraded
	conflict := AlreadyExists("pokemon", "Ash")
	assert.Same(t, conflict, Upgrade(conflict).(*Error))

	plain := Unknown("boom")
	assert.Same(t, plain, Upgrade(plain).(*Error))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("pokemon", "1")))
	assert.True(t, IsAlreadyExists(AlreadyExists("pokemon", "Ash")))
	assert.True(t, IsValidation(Validationf("name", "required")))
	assert.True(t, IsUnavailable(Unavailable("down")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

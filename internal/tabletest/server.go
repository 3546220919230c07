// Package tabletest provides an in-process table service for tests.
package tabletest

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/mtiwari1/tableloader/proto"
)

var (
	errTableNotFound = errors.New("table not found")
	errTableExists   = errors.New("table already exists")
)

// LoadCall is one LoadData request as the server received it.
type LoadCall struct {
	Request  *pb.LoadDataRequest
	Metadata metadata.MD
}

// Server implements TableServiceServer over an in-memory table set.
// Dependencies are injected via the constructor; no global state.
type Server struct {
	mu      sync.Mutex
	tables  map[string]*pb.Table
	loads   []LoadCall
	loadErr error
	logger  *slog.Logger
}

// NewServer creates an empty server.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{tables: make(map[string]*pb.Table), logger: logger}
}

// FailLoads makes every subsequent LoadData call return err. Pass nil to clear.
func (s *Server) FailLoads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// Loads returns a copy of the LoadData calls received so far.
func (s *Server) Loads() []LoadCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LoadCall(nil), s.loads...)
}

// CreateTable registers a new table.
func (s *Server) CreateTable(ctx context.Context, req *pb.CreateTableRequest) (*pb.CreateTableResponse, error) {
	if req.Table == nil || req.Table.TableName == "" {
		return nil, status.Error(codes.InvalidArgument, "CreateTable: table_name is required")
	}
	s.logger.Info("grpc CreateTable", slog.String("table", req.Table.TableName))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[req.Table.TableName]; ok {
		return nil, mapStoreError(errTableExists, "CreateTable")
	}
	now := time.Now().UTC()
	t := *req.Table
	t.TableId = uuid.New().String()
	t.CreateTime = now
	t.UpdateTime = now
	s.tables[t.TableName] = &t

	out := t
	return &pb.CreateTableResponse{Table: &out}, nil
}

// GetTable returns a table by name.
func (s *Server) GetTable(ctx context.Context, req *pb.GetTableRequest) (*pb.GetTableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[req.TableName]
	if !ok {
		return nil, mapStoreError(errTableNotFound, "GetTable")
	}
	out := *t
	return &pb.GetTableResponse{Table: &out}, nil
}

// ListTables returns tables whose name contains Search, ordered by name.
// The page token is the last name of the previous page.
func (s *Server) ListTables(ctx context.Context, req *pb.ListTablesRequest) (*pb.ListTablesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		if strings.Contains(name, req.Search) && name > req.PageToken {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	resp := &pb.ListTablesResponse{}
	if req.PageSize > 0 && len(names) > int(req.PageSize) {
		names = names[:req.PageSize]
		resp.NextPageToken = names[len(names)-1]
	}
	for _, name := range names {
		t := *s.tables[name]
		resp.Tables = append(resp.Tables, &t)
	}
	return resp, nil
}

// DeleteTable removes a table.
func (s *Server) DeleteTable(ctx context.Context, req *pb.DeleteTableRequest) (*pb.DeleteTableResponse, error) {
	s.logger.Info("grpc DeleteTable", slog.String("table", req.TableName), slog.Bool("force", req.Force))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[req.TableName]; !ok {
		return nil, mapStoreError(errTableNotFound, "DeleteTable")
	}
	delete(s.tables, req.TableName)
	return &pb.DeleteTableResponse{DataTokenId: uuid.New().String()}, nil
}

// LoadData records the request and, if the table exists, returns a new data token.
func (s *Server) LoadData(ctx context.Context, req *pb.LoadDataRequest) (*pb.LoadDataResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	s.logger.Info("grpc LoadData",
		slog.String("table", req.GetTableName()),
		slog.String("uri", req.GetFileInput().GetUri()),
		slog.String("file_type", req.GetFileInput().GetFileType().String()),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads = append(s.loads, LoadCall{Request: req, Metadata: md.Copy()})

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if req.GetFileInput() == nil || !strings.HasPrefix(req.FileInput.Uri, "file://") {
		return nil, status.Error(codes.InvalidArgument, "LoadData: file_input.uri must be a file:// URI")
	}
	if req.FileInput.FileType == pb.FileType_FILE_TYPE_UNSPECIFIED {
		return nil, status.Error(codes.InvalidArgument, "LoadData: file_input.file_type is required")
	}
	t, ok := s.tables[req.TableName]
	if !ok {
		return nil, mapStoreError(errTableNotFound, "LoadData")
	}
	t.UpdateTime = time.Now().UTC()
	return &pb.LoadDataResponse{DataTokenId: uuid.New().String()}, nil
}

// mapStoreError converts table store errors to gRPC status codes.
func mapStoreError(err error, method string) error {
	switch {
	case errors.Is(err, errTableNotFound):
		return status.Errorf(codes.NotFound, "%s: table not found", method)
	case errors.Is(err, errTableExists):
		return status.Errorf(codes.AlreadyExists, "%s: table already exists", method)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s: timeout", method)
	}
	return status.Errorf(codes.Internal, "%s: %v", method, err)
}

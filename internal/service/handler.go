package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"
)

// SplitServiceName is the fully-qualified name of the split service.
const SplitServiceName = "tipsplit.v1.SplitService"

// Procedure paths served by NewSplitServiceHandler.
const (
	ComputeProcedure       = "/" + SplitServiceName + "/Compute"
	CreateSessionProcedure = "/" + SplitServiceName + "/CreateSession"
	GetSessionProcedure    = "/" + SplitServiceName + "/GetSession"
	UpdateSessionProcedure = "/" + SplitServiceName + "/UpdateSession"
	DeleteSessionProcedure = "/" + SplitServiceName + "/DeleteSession"
)

type unaryFunc func(context.Context, *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error)

// NewSplitServiceHandler builds an HTTP handler for svc and returns the path
// prefix it should be mounted on.
func NewSplitServiceHandler(svc *SplitService, opts ...connect.HandlerOption) (string, http.Handler) {
	routes := map[string]unaryFunc{
		ComputeProcedure:       svc.Compute,
		CreateSessionProcedure: svc.CreateSession,
		GetSessionProcedure:    svc.GetSession,
		UpdateSessionProcedure: svc.UpdateSession,
		DeleteSessionProcedure: svc.DeleteSession,
	}

	mux := http.NewServeMux()
	for procedure, fn := range routes {
		mux.Handle(procedure, connect.NewUnaryHandler[structpb.Struct, structpb.Struct](procedure, fn, opts...))
	}
	return "/" + SplitServiceName + "/", mux
}

// SplitServiceClient calls a remote SplitService.
type SplitServiceClient struct {
	compute       *connect.Client[structpb.Struct, structpb.Struct]
	createSession *connect.Client[structpb.Struct, structpb.Struct]
	getSession    *connect.Client[structpb.Struct, structpb.Struct]
	updateSession *connect.Client[structpb.Struct, structpb.Struct]
	deleteSession *connect.Client[structpb.Struct, structpb.Struct]
}

// NewSplitServiceClient creates a client for the service at baseURL
// (e.g. "http://localhost:8080").
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &SplitServiceClient{
		compute:       connect.NewClient[structpb.Struct, structpb.Struct](httpClient, baseURL+ComputeProcedure, opts...),
		createSession: connect.NewClient[structpb.Struct, structpb.Struct](httpClient, baseURL+CreateSessionProcedure, opts...),
		getSession:    connect.NewClient[structpb.Struct, structpb.Struct](httpClient, baseURL+GetSessionProcedure, opts...),
		updateSession: connect.NewClient[structpb.Struct, structpb.Struct](httpClient, baseURL+UpdateSessionProcedure, opts...),
		deleteSession: connect.NewClient[structpb.Struct, structpb.Struct](httpClient, baseURL+DeleteSessionProcedure, opts...),
	}
}

// Compute calls tipsplit.v1.SplitService.Compute.
func (c *SplitServiceClient) Compute(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	return c.compute.CallUnary(ctx, req)
}

// CreateSession calls tipsplit.v1.SplitService.CreateSession.
func (c *SplitServiceClient) CreateSession(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	return c.createSession.CallUnary(ctx, req)
}

// GetSession calls tipsplit.v1.SplitService.GetSession.
func (c *SplitServiceClient) GetSession(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	return c.getSession.CallUnary(ctx, req)
}

// UpdateSession calls tipsplit.v1.SplitService.UpdateSession.
func (c *SplitServiceClient) UpdateSession(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	return c.updateSession.CallUnary(ctx, req)
}

// DeleteSession calls tipsplit.v1.SplitService.DeleteSession.
func (c *SplitServiceClient) DeleteSession(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	return c.deleteSession.CallUnary(ctx, req)
}

package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// TipServiceName is the fully-qualified name of the TipService.
const TipServiceName = "tiptop.v1.TipService"

// Procedure paths, as they appear in the URL path and in interceptors.
const (
	TipServiceCalculateProcedure     = "/tiptop.v1.TipService/Calculate"
	TipServiceListPresetsProcedure   = "/tiptop.v1.TipService/ListPresets"
	TipServiceCreateSessionProcedure = "/tiptop.v1.TipService/CreateSession"
	TipServiceGetSessionProcedure    = "/tiptop.v1.TipService/GetSession"
	TipServiceUpdateFieldProcedure   = "/tiptop.v1.TipService/UpdateField"
	TipServiceSelectPresetProcedure  = "/tiptop.v1.TipService/SelectPreset"
	TipServiceResetSessionProcedure  = "/tiptop.v1.TipService/ResetSession"
	TipServiceCloseSessionProcedure  = "/tiptop.v1.TipService/CloseSession"
)

// TipServiceHandler is implemented by the server side of the TipService.
type TipServiceHandler interface {
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error)
	ListPresets(context.Context, *connect.Request[ListPresetsRequest]) (*connect.Response[ListPresetsResponse], error)
	CreateSession(context.Context, *connect.Request[CreateSessionRequest]) (*connect.Response[SessionResponse], error)
	GetSession(context.Context, *connect.Request[GetSessionRequest]) (*connect.Response[SessionResponse], error)
	UpdateField(context.Context, *connect.Request[UpdateFieldRequest]) (*connect.Response[SessionResponse], error)
	SelectPreset(context.Context, *connect.Request[SelectPresetRequest]) (*connect.Response[SessionResponse], error)
	ResetSession(context.Context, *connect.Request[ResetSessionRequest]) (*connect.Response[SessionResponse], error)
	CloseSession(context.Context, *connect.Request[CloseSessionRequest]) (*connect.Response[CloseSessionResponse], error)
}

// NewTipServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	readOnly := append([]connect.HandlerOption{connect.WithIdempotency(connect.IdempotencyNoSideEffects)}, opts...)

	calculate := connect.NewUnaryHandler(TipServiceCalculateProcedure, svc.Calculate, readOnly...)
	listPresets := connect.NewUnaryHandler(TipServiceListPresetsProcedure, svc.ListPresets, readOnly...)
	createSession := connect.NewUnaryHandler(TipServiceCreateSessionProcedure, svc.CreateSession, opts...)
	getSession := connect.NewUnaryHandler(TipServiceGetSessionProcedure, svc.GetSession, readOnly...)
	updateField := connect.NewUnaryHandler(TipServiceUpdateFieldProcedure, svc.UpdateField, opts...)
	selectPreset := connect.NewUnaryHandler(TipServiceSelectPresetProcedure, svc.SelectPreset, opts...)
	resetSession := connect.NewUnaryHandler(TipServiceResetSessionProcedure, svc.ResetSession, opts...)
	closeSession := connect.NewUnaryHandler(TipServiceCloseSessionProcedure, svc.CloseSession, opts...)

	return "/" + TipServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TipServiceCalculateProcedure:
			calculate.ServeHTTP(w, r)
		case TipServiceListPresetsProcedure:
			listPresets.ServeHTTP(w, r)
		case TipServiceCreateSessionProcedure:
			createSession.ServeHTTP(w, r)
		case TipServiceGetSessionProcedure:
			getSession.ServeHTTP(w, r)
		case TipServiceUpdateFieldProcedure:
			updateField.ServeHTTP(w, r)
		case TipServiceSelectPresetProcedure:
			selectPreset.ServeHTTP(w, r)
		case TipServiceResetSessionProcedure:
			resetSession.ServeHTTP(w, r)
		case TipServiceCloseSessionProcedure:
			closeSession.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// TipServiceClient calls a remote TipService.
type TipServiceClient struct {
	calculate     *connect.Client[CalculateRequest, CalculateResponse]
	listPresets   *connect.Client[ListPresetsRequest, ListPresetsResponse]
	createSession *connect.Client[CreateSessionRequest, SessionResponse]
	getSession    *connect.Client[GetSessionRequest, SessionResponse]
	updateField   *connect.Client[UpdateFieldRequest, SessionResponse]
	selectPreset  *connect.Client[SelectPresetRequest, SessionResponse]
	resetSession  *connect.Client[ResetSessionRequest, SessionResponse]
	closeSession  *connect.Client[CloseSessionRequest, CloseSessionResponse]
}

// NewTipServiceClient constructs a client for the TipService at baseURL
// (for example, http://localhost:8080).
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &TipServiceClient{
		calculate:     connect.NewClient[CalculateRequest, CalculateResponse](httpClient, baseURL+TipServiceCalculateProcedure, opts...),
		listPresets:   connect.NewClient[ListPresetsRequest, ListPresetsResponse](httpClient, baseURL+TipServiceListPresetsProcedure, opts...),
		createSession: connect.NewClient[CreateSessionRequest, SessionResponse](httpClient, baseURL+TipServiceCreateSessionProcedure, opts...),
		getSession:    connect.NewClient[GetSessionRequest, SessionResponse](httpClient, baseURL+TipServiceGetSessionProcedure, opts...),
		updateField:   connect.NewClient[UpdateFieldRequest, SessionResponse](httpClient, baseURL+TipServiceUpdateFieldProcedure, opts...),
		selectPreset:  connect.NewClient[SelectPresetRequest, SessionResponse](httpClient, baseURL+TipServiceSelectPresetProcedure, opts...),
		resetSession:  connect.NewClient[ResetSessionRequest, SessionResponse](httpClient, baseURL+TipServiceResetSessionProcedure, opts...),
		closeSession:  connect.NewClient[CloseSessionRequest, CloseSessionResponse](httpClient, baseURL+TipServiceCloseSessionProcedure, opts...),
	}
}

func (c *TipServiceClient) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *TipServiceClient) ListPresets(ctx context.Context, req *connect.Request[ListPresetsRequest]) (*connect.Response[ListPresetsResponse], error) {
	return c.listPresets.CallUnary(ctx, req)
}

func (c *TipServiceClient) CreateSession(ctx context.Context, req *connect.Request[CreateSessionRequest]) (*connect.Response[SessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *TipServiceClient) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[SessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *TipServiceClient) UpdateField(ctx context.Context, req *connect.Request[UpdateFieldRequest]) (*connect.Response[SessionResponse], error) {
	return c.updateField.CallUnary(ctx, req)
}

func (c *TipServiceClient) SelectPreset(ctx context.Context, req *connect.Request[SelectPresetRequest]) (*connect.Response[SessionResponse], error) {
	return c.selectPreset.CallUnary(ctx, req)
}

func (c *TipServiceClient) ResetSession(ctx context.Context, req *connect.Request[ResetSessionRequest]) (*connect.Response[SessionResponse], error) {
	return c.resetSession.CallUnary(ctx, req)
}

func (c *TipServiceClient) CloseSession(ctx context.Context, req *connect.Request[CloseSessionRequest]) (*connect.Response[CloseSessionResponse], error) {
	return c.closeSession.CallUnary(ctx, req)
}

// Package apiconnect wires tabsplit.v1.ReceiptService to Connect handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tabsplit/pkg/api"
)

// ReceiptServiceName is the fully-qualified name of the ReceiptService service.
const ReceiptServiceName = "tabsplit.v1.ReceiptService"

// Procedure paths, as they appear in request URLs and in Spec.Procedure.
const (
	ReceiptServiceCalculateProcedure         = "/tabsplit.v1.ReceiptService/Calculate"
	ReceiptServiceCreateReceiptProcedure     = "/tabsplit.v1.ReceiptService/CreateReceipt"
	ReceiptServiceGetReceiptProcedure        = "/tabsplit.v1.ReceiptService/GetReceipt"
	ReceiptServiceListReceiptsProcedure      = "/tabsplit.v1.ReceiptService/ListReceipts"
	ReceiptServiceDeleteReceiptProcedure     = "/tabsplit.v1.ReceiptService/DeleteReceipt"
	ReceiptServiceAddParticipantProcedure    = "/tabsplit.v1.ReceiptService/AddParticipant"
	ReceiptServiceRemoveParticipantProcedure = "/tabsplit.v1.ReceiptService/RemoveParticipant"
	ReceiptServiceAddItemProcedure           = "/tabsplit.v1.ReceiptService/AddItem"
	ReceiptServiceRemoveItemProcedure        = "/tabsplit.v1.ReceiptService/RemoveItem"
	ReceiptServiceSetRatesProcedure          = "/tabsplit.v1.ReceiptService/SetRates"
)

// ReceiptServiceHandler is implemented by the server.
type ReceiptServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	CreateReceipt(context.Context, *connect.Request[api.CreateReceiptRequest]) (*connect.Response[api.CreateReceiptResponse], error)
	GetReceipt(context.Context, *connect.Request[api.GetReceiptRequest]) (*connect.Response[api.GetReceiptResponse], error)
	ListReceipts(context.Context, *connect.Request[api.ListReceiptsRequest]) (*connect.Response[api.ListReceiptsResponse], error)
	DeleteReceipt(context.Context, *connect.Request[api.DeleteReceiptRequest]) (*connect.Response[api.DeleteReceiptResponse], error)
	AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.EditResponse], error)
	RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.EditResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.EditResponse], error)
	RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.EditResponse], error)
	SetRates(context.Context, *connect.Request[api.SetRatesRequest]) (*connect.Response[api.EditResponse], error)
}

// NewReceiptServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewReceiptServiceHandler(svc ReceiptServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ReceiptServiceCalculateProcedure,
		connect.NewUnaryHandler(ReceiptServiceCalculateProcedure, svc.Calculate, opts...))
	mux.Handle(ReceiptServiceCreateReceiptProcedure,
		connect.NewUnaryHandler(ReceiptServiceCreateReceiptProcedure, svc.CreateReceipt, opts...))
	mux.Handle(ReceiptServiceGetReceiptProcedure,
		connect.NewUnaryHandler(ReceiptServiceGetReceiptProcedure, svc.GetReceipt, opts...))
	mux.Handle(ReceiptServiceListReceiptsProcedure,
		connect.NewUnaryHandler(ReceiptServiceListReceiptsProcedure, svc.ListReceipts, opts...))
	mux.Handle(ReceiptServiceDeleteReceiptProcedure,
		connect.NewUnaryHandler(ReceiptServiceDeleteReceiptProcedure, svc.DeleteReceipt, opts...))
	mux.Handle(ReceiptServiceAddParticipantProcedure,
		connect.NewUnaryHandler(ReceiptServiceAddParticipantProcedure, svc.AddParticipant, opts...))
	mux.Handle(ReceiptServiceRemoveParticipantProcedure,
		connect.NewUnaryHandler(ReceiptServiceRemoveParticipantProcedure, svc.RemoveParticipant, opts...))
	mux.Handle(ReceiptServiceAddItemProcedure,
		connect.NewUnaryHandler(ReceiptServiceAddItemProcedure, svc.AddItem, opts...))
	mux.Handle(ReceiptServiceRemoveItemProcedure,
		connect.NewUnaryHandler(ReceiptServiceRemoveItemProcedure, svc.RemoveItem, opts...))
	mux.Handle(ReceiptServiceSetRatesProcedure,
		connect.NewUnaryHandler(ReceiptServiceSetRatesProcedure, svc.SetRates, opts...))

	return "/" + ReceiptServiceName + "/", mux
}

// ReceiptServiceClient is a client for tabsplit.v1.ReceiptService.
type ReceiptServiceClient interface {
	ReceiptServiceHandler
}

// NewReceiptServiceClient constructs a client. baseURL is the server root,
// e.g. http://localhost:8080.
func NewReceiptServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReceiptServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &receiptServiceClient{
		calculate: connect.NewClient[api.CalculateRequest, api.CalculateResponse](
			httpClient, baseURL+ReceiptServiceCalculateProcedure, opts...),
		createReceipt: connect.NewClient[api.CreateReceiptRequest, api.CreateReceiptResponse](
			httpClient, baseURL+ReceiptServiceCreateReceiptProcedure, opts...),
		getReceipt: connect.NewClient[api.GetReceiptRequest, api.GetReceiptResponse](
			httpClient, baseURL+ReceiptServiceGetReceiptProcedure, opts...),
		listReceipts: connect.NewClient[api.ListReceiptsRequest, api.ListReceiptsResponse](
			httpClient, baseURL+ReceiptServiceListReceiptsProcedure, opts...),
		deleteReceipt: connect.NewClient[api.DeleteReceiptRequest, api.DeleteReceiptResponse](
			httpClient, baseURL+ReceiptServiceDeleteReceiptProcedure, opts...),
		addParticipant: connect.NewClient[api.AddParticipantRequest, api.EditResponse](
			httpClient, baseURL+ReceiptServiceAddParticipantProcedure, opts...),
		removeParticipant: connect.NewClient[api.RemoveParticipantRequest, api.EditResponse](
			httpClient, baseURL+ReceiptServiceRemoveParticipantProcedure, opts...),
		addItem: connect.NewClient[api.AddItemRequest, api.EditResponse](
			httpClient, baseURL+ReceiptServiceAddItemProcedure, opts...),
		removeItem: connect.NewClient[api.RemoveItemRequest, api.EditResponse](
			httpClient, baseURL+ReceiptServiceRemoveItemProcedure, opts...),
		setRates: connect.NewClient[api.SetRatesRequest, api.EditResponse](
			httpClient, baseURL+ReceiptServiceSetRatesProcedure, opts...),
	}
}

type receiptServiceClient struct {
	calculate         *connect.Client[api.CalculateRequest, api.CalculateResponse]
	createReceipt     *connect.Client[api.CreateReceiptRequest, api.CreateReceiptResponse]
	getReceipt        *connect.Client[api.GetReceiptRequest, api.GetReceiptResponse]
	listReceipts      *connect.Client[api.ListReceiptsRequest, api.ListReceiptsResponse]
	deleteReceipt     *connect.Client[api.DeleteReceiptRequest, api.DeleteReceiptResponse]
	addParticipant    *connect.Client[api.AddParticipantRequest, api.EditResponse]
	removeParticipant *connect.Client[api.RemoveParticipantRequest, api.EditResponse]
	addItem           *connect.Client[api.AddItemRequest, api.EditResponse]
	removeItem        *connect.Client[api.RemoveItemRequest, api.EditResponse]
	setRates          *connect.Client[api.SetRatesRequest, api.EditResponse]
}

func (c *receiptServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *receiptServiceClient) CreateReceipt(ctx context.Context, req *connect.Request[api.CreateReceiptRequest]) (*connect.Response[api.CreateReceiptResponse], error) {
	return c.createReceipt.CallUnary(ctx, req)
}

func (c *receiptServiceClient) GetReceipt(ctx context.Context, req *connect.Request[api.GetReceiptRequest]) (*connect.Response[api.GetReceiptResponse], error) {
	return c.getReceipt.CallUnary(ctx, req)
}

func (c *receiptServiceClient) ListReceipts(ctx context.Context, req *connect.Request[api.ListReceiptsRequest]) (*connect.Response[api.ListReceiptsResponse], error) {
	return c.listReceipts.CallUnary(ctx, req)
}

func (c *receiptServiceClient) DeleteReceipt(ctx context.Context, req *connect.Request[api.DeleteReceiptRequest]) (*connect.Response[api.DeleteReceiptResponse], error) {
	return c.deleteReceipt.CallUnary(ctx, req)
}

func (c *receiptServiceClient) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.EditResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *receiptServiceClient) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.EditResponse], error) {
	return c.removeParticipant.CallUnary(ctx, req)
}

func (c *receiptServiceClient) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.EditResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

func (c *receiptServiceClient) RemoveItem(ctx context.Context, req *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.EditResponse], error) {
	return c.removeItem.CallUnary(ctx, req)
}

func (c *receiptServiceClient) SetRates(ctx context.Context, req *connect.Request[api.SetRatesRequest]) (*connect.Response[api.EditResponse], error) {
	return c.setRates.CallUnary(ctx, req)
}

// UnimplementedReceiptServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedReceiptServiceHandler struct{}

func unimplemented(procedure string) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(strings.TrimPrefix(procedure, "/")+" is not implemented"))
}

func (UnimplementedReceiptServiceHandler) Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return nil, unimplemented(ReceiptServiceCalculateProcedure)
}

func (UnimplementedReceiptServiceHandler) CreateReceipt(context.Context, *connect.Request[api.CreateReceiptRequest]) (*connect.Response[api.CreateReceiptResponse], error) {
	return nil, unimplemented(ReceiptServiceCreateReceiptProcedure)
}

func (UnimplementedReceiptServiceHandler) GetReceipt(context.Context, *connect.Request[api.GetReceiptRequest]) (*connect.Response[api.GetReceiptResponse], error) {
	return nil, unimplemented(ReceiptServiceGetReceiptProcedure)
}

func (UnimplementedReceiptServiceHandler) ListReceipts(context.Context, *connect.Request[api.ListReceiptsRequest]) (*connect.Response[api.ListReceiptsResponse], error) {
	return nil, unimplemented(ReceiptServiceListReceiptsProcedure)
}

func (UnimplementedReceiptServiceHandler) DeleteReceipt(context.Context, *connect.Request[api.DeleteReceiptRequest]) (*connect.Response[api.DeleteReceiptResponse], error) {
	return nil, unimplemented(ReceiptServiceDeleteReceiptProcedure)
}

func (UnimplementedReceiptServiceHandler) AddParticipant(context.Context, *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.EditResponse], error) {
	return nil, unimplemented(ReceiptServiceAddParticipantProcedure)
}

func (UnimplementedReceiptServiceHandler) RemoveParticipant(context.Context, *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.EditResponse], error) {
	return nil, unimplemented(ReceiptServiceRemoveParticipantProcedure)
}

func (UnimplementedReceiptServiceHandler) AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.EditResponse], error) {
	return nil, unimplemented(ReceiptServiceAddItemProcedure)
}

func (UnimplementedReceiptServiceHandler) RemoveItem(context.Context, *connect.Request[api.RemoveItemRequest]) (*connect.Response[api.EditResponse], error) {
	return nil, unimplemented(ReceiptServiceRemoveItemProcedure)
}

func (UnimplementedReceiptServiceHandler) SetRates(context.Context, *connect.Request[api.SetRatesRequest]) (*connect.Response[api.EditResponse], error) {
	return nil, unimplemented(ReceiptServiceSetRatesProcedure)
}

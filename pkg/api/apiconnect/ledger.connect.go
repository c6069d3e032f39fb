// Package apiconnect wires splitledger.v1.LedgerService into Connect handlers
// and clients.
package apiconnect

import (
	context "context"
	errors "errors"
	http "net/http"
	strings "strings"

	connect "connectrpc.com/connect"

	api "github.com/mmynk/splitledger/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "splitledger.v1.LedgerService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	LedgerServiceCreateUserProcedure                    = "/splitledger.v1.LedgerService/CreateUser"
	LedgerServiceGetUserByIdProcedure                   = "/splitledger.v1.LedgerService/GetUserById"
	LedgerServiceRegisterBankAccountProcedure           = "/splitledger.v1.LedgerService/RegisterBankAccount"
	LedgerServiceGetBankAccountByIdProcedure            = "/splitledger.v1.LedgerService/GetBankAccountById"
	LedgerServiceGetBillByIdProcedure                   = "/splitledger.v1.LedgerService/GetBillById"
	LedgerServiceGetSplitBillParticipantProcedure       = "/splitledger.v1.LedgerService/GetSplitBillParticipant"
	LedgerServiceSplitBillProcedure                     = "/splitledger.v1.LedgerService/SplitBill"
	LedgerServicePayBillProcedure                       = "/splitledger.v1.LedgerService/PayBill"
	LedgerServiceGetMyDueBillProcedure                  = "/splitledger.v1.LedgerService/GetMyDueBill"
	LedgerServiceGetPaymentMethodsFromUserBillProcedure = "/splitledger.v1.LedgerService/GetPaymentMethodsFromUserBill"
	LedgerServiceRemoveBankAccountProcedure             = "/splitledger.v1.LedgerService/RemoveBankAccount"
)

// LedgerServiceClient is a client for the splitledger.v1.LedgerService service.
type LedgerServiceClient interface {
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error)
	GetUserById(context.Context, *connect.Request[api.GetUserByIdRequest]) (*connect.Response[api.GetUserByIdResponse], error)
	RegisterBankAccount(context.Context, *connect.Request[api.RegisterBankAccountRequest]) (*connect.Response[api.RegisterBankAccountResponse], error)
	GetBankAccountById(context.Context, *connect.Request[api.GetBankAccountByIdRequest]) (*connect.Response[api.GetBankAccountByIdResponse], error)
	GetBillById(context.Context, *connect.Request[api.GetBillByIdRequest]) (*connect.Response[api.GetBillByIdResponse], error)
	GetSplitBillParticipant(context.Context, *connect.Request[api.GetSplitBillParticipantRequest]) (*connect.Response[api.GetSplitBillParticipantResponse], error)
	SplitBill(context.Context, *connect.Request[api.SplitBillRequest]) (*connect.Response[api.SplitBillResponse], error)
	PayBill(context.Context, *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error)
	GetMyDueBill(context.Context, *connect.Request[api.GetMyDueBillRequest]) (*connect.Response[api.GetMyDueBillResponse], error)
	GetPaymentMethodsFromUserBill(context.Context, *connect.Request[api.GetPaymentMethodsFromUserBillRequest]) (*connect.Response[api.GetPaymentMethodsFromUserBillResponse], error)
	RemoveBankAccount(context.Context, *connect.Request[api.RemoveBankAccountRequest]) (*connect.Response[api.RemoveBankAccountResponse], error)
}

// NewLedgerServiceClient constructs a client for the splitledger.v1.LedgerService service.
// The JSON codec is always installed; opts are applied after it.
//
// The URL supplied here should be the base URL for the Connect server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	query := append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))
	return &ledgerServiceClient{
		createUser: connect.NewClient[api.CreateUserRequest, api.CreateUserResponse](
			httpClient, baseURL+LedgerServiceCreateUserProcedure, opts...),
		getUserById: connect.NewClient[api.GetUserByIdRequest, api.GetUserByIdResponse](
			httpClient, baseURL+LedgerServiceGetUserByIdProcedure, query...),
		registerBankAccount: connect.NewClient[api.RegisterBankAccountRequest, api.RegisterBankAccountResponse](
			httpClient, baseURL+LedgerServiceRegisterBankAccountProcedure, opts...),
		getBankAccountById: connect.NewClient[api.GetBankAccountByIdRequest, api.GetBankAccountByIdResponse](
			httpClient, baseURL+LedgerServiceGetBankAccountByIdProcedure, query...),
		getBillById: connect.NewClient[api.GetBillByIdRequest, api.GetBillByIdResponse](
			httpClient, baseURL+LedgerServiceGetBillByIdProcedure, query...),
		getSplitBillParticipant: connect.NewClient[api.GetSplitBillParticipantRequest, api.GetSplitBillParticipantResponse](
			httpClient, baseURL+LedgerServiceGetSplitBillParticipantProcedure, query...),
		splitBill: connect.NewClient[api.SplitBillRequest, api.SplitBillResponse](
			httpClient, baseURL+LedgerServiceSplitBillProcedure, opts...),
		payBill: connect.NewClient[api.PayBillRequest, api.PayBillResponse](
			httpClient, baseURL+LedgerServicePayBillProcedure, opts...),
		getMyDueBill: connect.NewClient[api.GetMyDueBillRequest, api.GetMyDueBillResponse](
			httpClient, baseURL+LedgerServiceGetMyDueBillProcedure, query...),
		getPaymentMethodsFromUserBill: connect.NewClient[api.GetPaymentMethodsFromUserBillRequest, api.GetPaymentMethodsFromUserBillResponse](
			httpClient, baseURL+LedgerServiceGetPaymentMethodsFromUserBillProcedure, query...),
		removeBankAccount: connect.NewClient[api.RemoveBankAccountRequest, api.RemoveBankAccountResponse](
			httpClient, baseURL+LedgerServiceRemoveBankAccountProcedure, opts...),
	}
}

// ledgerServiceClient implements LedgerServiceClient.
type ledgerServiceClient struct {
	createUser                    *connect.Client[api.CreateUserRequest, api.CreateUserResponse]
	getUserById                   *connect.Client[api.GetUserByIdRequest, api.GetUserByIdResponse]
	registerBankAccount           *connect.Client[api.RegisterBankAccountRequest, api.RegisterBankAccountResponse]
	getBankAccountById            *connect.Client[api.GetBankAccountByIdRequest, api.GetBankAccountByIdResponse]
	getBillById                   *connect.Client[api.GetBillByIdRequest, api.GetBillByIdResponse]
	getSplitBillParticipant       *connect.Client[api.GetSplitBillParticipantRequest, api.GetSplitBillParticipantResponse]
	splitBill                     *connect.Client[api.SplitBillRequest, api.SplitBillResponse]
	payBill                       *connect.Client[api.PayBillRequest, api.PayBillResponse]
	getMyDueBill                  *connect.Client[api.GetMyDueBillRequest, api.GetMyDueBillResponse]
	getPaymentMethodsFromUserBill *connect.Client[api.GetPaymentMethodsFromUserBillRequest, api.GetPaymentMethodsFromUserBillResponse]
	removeBankAccount             *connect.Client[api.RemoveBankAccountRequest, api.RemoveBankAccountResponse]
}

func (c *ledgerServiceClient) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetUserById(ctx context.Context, req *connect.Request[api.GetUserByIdRequest]) (*connect.Response[api.GetUserByIdResponse], error) {
	return c.getUserById.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RegisterBankAccount(ctx context.Context, req *connect.Request[api.RegisterBankAccountRequest]) (*connect.Response[api.RegisterBankAccountResponse], error) {
	return c.registerBankAccount.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBankAccountById(ctx context.Context, req *connect.Request[api.GetBankAccountByIdRequest]) (*connect.Response[api.GetBankAccountByIdResponse], error) {
	return c.getBankAccountById.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBillById(ctx context.Context, req *connect.Request[api.GetBillByIdRequest]) (*connect.Response[api.GetBillByIdResponse], error) {
	return c.getBillById.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSplitBillParticipant(ctx context.Context, req *connect.Request[api.GetSplitBillParticipantRequest]) (*connect.Response[api.GetSplitBillParticipantResponse], error) {
	return c.getSplitBillParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SplitBill(ctx context.Context, req *connect.Request[api.SplitBillRequest]) (*connect.Response[api.SplitBillResponse], error) {
	return c.splitBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) PayBill(ctx context.Context, req *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error) {
	return c.payBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetMyDueBill(ctx context.Context, req *connect.Request[api.GetMyDueBillRequest]) (*connect.Response[api.GetMyDueBillResponse], error) {
	return c.getMyDueBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetPaymentMethodsFromUserBill(ctx context.Context, req *connect.Request[api.GetPaymentMethodsFromUserBillRequest]) (*connect.Response[api.GetPaymentMethodsFromUserBillResponse], error) {
	return c.getPaymentMethodsFromUserBill.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RemoveBankAccount(ctx context.Context, req *connect.Request[api.RemoveBankAccountRequest]) (*connect.Response[api.RemoveBankAccountResponse], error) {
	return c.removeBankAccount.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the splitledger.v1.LedgerService service.
type LedgerServiceHandler interface {
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error)
	GetUserById(context.Context, *connect.Request[api.GetUserByIdRequest]) (*connect.Response[api.GetUserByIdResponse], error)
	RegisterBankAccount(context.Context, *connect.Request[api.RegisterBankAccountRequest]) (*connect.Response[api.RegisterBankAccountResponse], error)
	GetBankAccountById(context.Context, *connect.Request[api.GetBankAccountByIdRequest]) (*connect.Response[api.GetBankAccountByIdResponse], error)
	GetBillById(context.Context, *connect.Request[api.GetBillByIdRequest]) (*connect.Response[api.GetBillByIdResponse], error)
	GetSplitBillParticipant(context.Context, *connect.Request[api.GetSplitBillParticipantRequest]) (*connect.Response[api.GetSplitBillParticipantResponse], error)
	SplitBill(context.Context, *connect.Request[api.SplitBillRequest]) (*connect.Response[api.SplitBillResponse], error)
	PayBill(context.Context, *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error)
	GetMyDueBill(context.Context, *connect.Request[api.GetMyDueBillRequest]) (*connect.Response[api.GetMyDueBillResponse], error)
	GetPaymentMethodsFromUserBill(context.Context, *connect.Request[api.GetPaymentMethodsFromUserBillRequest]) (*connect.Response[api.GetPaymentMethodsFromUserBillResponse], error)
	RemoveBankAccount(context.Context, *connect.Request[api.RemoveBankAccountRequest]) (*connect.Response[api.RemoveBankAccountResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// Read-only procedures are marked free of side effects, which also lets
// clients call them with HTTP GET.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	query := append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))

	createUserHandler := connect.NewUnaryHandler(LedgerServiceCreateUserProcedure, svc.CreateUser, opts...)
	getUserByIdHandler := connect.NewUnaryHandler(LedgerServiceGetUserByIdProcedure, svc.GetUserById, query...)
	registerBankAccountHandler := connect.NewUnaryHandler(LedgerServiceRegisterBankAccountProcedure, svc.RegisterBankAccount, opts...)
	getBankAccountByIdHandler := connect.NewUnaryHandler(LedgerServiceGetBankAccountByIdProcedure, svc.GetBankAccountById, query...)
	getBillByIdHandler := connect.NewUnaryHandler(LedgerServiceGetBillByIdProcedure, svc.GetBillById, query...)
	getSplitBillParticipantHandler := connect.NewUnaryHandler(LedgerServiceGetSplitBillParticipantProcedure, svc.GetSplitBillParticipant, query...)
	splitBillHandler := connect.NewUnaryHandler(LedgerServiceSplitBillProcedure, svc.SplitBill, opts...)
	payBillHandler := connect.NewUnaryHandler(LedgerServicePayBillProcedure, svc.PayBill, opts...)
	getMyDueBillHandler := connect.NewUnaryHandler(LedgerServiceGetMyDueBillProcedure, svc.GetMyDueBill, query...)
	getPaymentMethodsFromUserBillHandler := connect.NewUnaryHandler(LedgerServiceGetPaymentMethodsFromUserBillProcedure, svc.GetPaymentMethodsFromUserBill, query...)
	removeBankAccountHandler := connect.NewUnaryHandler(LedgerServiceRemoveBankAccountProcedure, svc.RemoveBankAccount, opts...)

	return "/splitledger.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceCreateUserProcedure:
			createUserHandler.ServeHTTP(w, r)
		case LedgerServiceGetUserByIdProcedure:
			getUserByIdHandler.ServeHTTP(w, r)
		case LedgerServiceRegisterBankAccountProcedure:
			registerBankAccountHandler.ServeHTTP(w, r)
		case LedgerServiceGetBankAccountByIdProcedure:
			getBankAccountByIdHandler.ServeHTTP(w, r)
		case LedgerServiceGetBillByIdProcedure:
			getBillByIdHandler.ServeHTTP(w, r)
		case LedgerServiceGetSplitBillParticipantProcedure:
			getSplitBillParticipantHandler.ServeHTTP(w, r)
		case LedgerServiceSplitBillProcedure:
			splitBillHandler.ServeHTTP(w, r)
		case LedgerServicePayBillProcedure:
			payBillHandler.ServeHTTP(w, r)
		case LedgerServiceGetMyDueBillProcedure:
			getMyDueBillHandler.ServeHTTP(w, r)
		case LedgerServiceGetPaymentMethodsFromUserBillProcedure:
			getPaymentMethodsFromUserBillHandler.ServeHTTP(w, r)
		case LedgerServiceRemoveBankAccountProcedure:
			removeBankAccountHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.CreateUser is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetUserById(context.Context, *connect.Request[api.GetUserByIdRequest]) (*connect.Response[api.GetUserByIdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetUserById is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RegisterBankAccount(context.Context, *connect.Request[api.RegisterBankAccountRequest]) (*connect.Response[api.RegisterBankAccountResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.RegisterBankAccount is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetBankAccountById(context.Context, *connect.Request[api.GetBankAccountByIdRequest]) (*connect.Response[api.GetBankAccountByIdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetBankAccountById is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetBillById(context.Context, *connect.Request[api.GetBillByIdRequest]) (*connect.Response[api.GetBillByIdResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetBillById is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetSplitBillParticipant(context.Context, *connect.Request[api.GetSplitBillParticipantRequest]) (*connect.Response[api.GetSplitBillParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetSplitBillParticipant is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SplitBill(context.Context, *connect.Request[api.SplitBillRequest]) (*connect.Response[api.SplitBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.SplitBill is not implemented"))
}

func (UnimplementedLedgerServiceHandler) PayBill(context.Context, *connect.Request[api.PayBillRequest]) (*connect.Response[api.PayBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.PayBill is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetMyDueBill(context.Context, *connect.Request[api.GetMyDueBillRequest]) (*connect.Response[api.GetMyDueBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetMyDueBill is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetPaymentMethodsFromUserBill(context.Context, *connect.Request[api.GetPaymentMethodsFromUserBillRequest]) (*connect.Response[api.GetPaymentMethodsFromUserBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetPaymentMethodsFromUserBill is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemoveBankAccount(context.Context, *connect.Request[api.RemoveBankAccountRequest]) (*connect.Response[api.RemoveBankAccountResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.RemoveBankAccount is not implemented"))
}

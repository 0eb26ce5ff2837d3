// Package evalservice exposes the evaluator over gRPC without a protoc
// codegen step: the EvalService descriptor is parsed from an inline .proto
// source via protoparse, and requests/responses are read and built as
// *dynamic.Message values.
package evalservice

import (
	"context"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/eva-lang/eva/internal/astjson"
	"github.com/eva-lang/eva/internal/evaluator"
)

const protoFileName = "eval.proto"

const protoSource = `syntax = "proto3";

package eva;

service EvalService {
  rpc Eval(EvalRequest) returns (EvalResponse);
}

message EvalRequest {
  string request_id = 1;
  bytes program_json = 2;
}

message EvalResponse {
  string request_id = 1;
  bool ok = 2;
  string value_json = 3;
  string error_kind = 4;
  string error_message = 5;
}
`

const serviceFullName = "eva.EvalService"

// descriptors parses the inline proto source once per call. The parse is
// cheap (a handful of messages) and keeps Server construction free of any
// package-level mutable registry.
func descriptors() (sd *desc.ServiceDescriptor, reqMd, respMd *desc.MessageDescriptor, err error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{protoFileName: protoSource}),
	}
	fds, err := parser.ParseFiles(protoFileName)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing eval service descriptor: %w", err)
	}
	fd := fds[0]
	sd = fd.FindService(serviceFullName)
	if sd == nil {
		return nil, nil, nil, fmt.Errorf("service %s not found in parsed descriptor", serviceFullName)
	}
	reqMd = fd.FindMessage("eva.EvalRequest")
	respMd = fd.FindMessage("eva.EvalResponse")
	if reqMd == nil || respMd == nil {
		return nil, nil, nil, fmt.Errorf("request/response messages not found in parsed descriptor")
	}
	return sd, reqMd, respMd, nil
}

// Server wraps a grpc.Server with the EvalService registered against it.
// Each Eval call builds its own evaluator.Environment and Evaluator, so
// concurrent requests never share evaluation state: the evaluator itself is
// single-threaded per run, but the server may run many runs at once.
type Server struct {
	grpcServer *grpc.Server
	globals    func() *evaluator.Environment
	maxDepth   int
}

// NewServer builds a Server. newGlobals is called once per request to
// produce a fresh global environment (e.g. evaluator.NewGlobalEnvironment
// plus any config-applied extra bindings); maxDepth of 0 keeps the
// evaluator's own default.
func NewServer(newGlobals func() *evaluator.Environment, maxDepth int) (*Server, error) {
	sd, reqMd, respMd, err := descriptors()
	if err != nil {
		return nil, err
	}

	s := &Server{
		grpcServer: grpc.NewServer(),
		globals:    newGlobals,
		maxDepth:   maxDepth,
	}

	handler := &evalHandler{server: s, reqMd: reqMd, respMd: respMd}

	desc := &grpc.ServiceDesc{
		ServiceName: serviceFullName,
		HandlerType: (*interface{})(nil),
		Metadata:    sd.GetFile().GetName(),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "Eval",
				Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
					h := srv.(*evalHandler)
					return h.handleEval(ctx, dec)
				},
			},
		},
	}
	s.grpcServer.RegisterService(desc, handler)

	return s, nil
}

// Serve listens on addr and blocks serving requests until the listener or
// server is stopped.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.grpcServer.Serve(lis)
}

// Stop gracefully stops the server, letting in-flight Eval calls finish.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

type evalHandler struct {
	server *Server
	reqMd  *desc.MessageDescriptor
	respMd *desc.MessageDescriptor
}

func (h *evalHandler) handleEval(ctx context.Context, dec func(interface{}) error) (interface{}, error) {
	reqMsg := dynamic.NewMessage(h.reqMd)
	if err := dec(reqMsg); err != nil {
		return nil, err
	}

	requestID, _ := reqMsg.TryGetFieldByName("request_id")
	programJSON, _ := reqMsg.TryGetFieldByName("program_json")

	id, _ := requestID.(string)
	if id == "" {
		id = uuid.New().String()
	}
	payload, _ := programJSON.([]byte)

	respMsg := dynamic.NewMessage(h.respMd)
	_ = respMsg.TrySetFieldByName("request_id", id)

	node, err := astjson.Unmarshal(payload)
	if err != nil {
		_ = respMsg.TrySetFieldByName("ok", false)
		_ = respMsg.TrySetFieldByName("error_kind", "MalformedNode")
		_ = respMsg.TrySetFieldByName("error_message", err.Error())
		return respMsg, nil
	}

	env := h.server.globals()
	ev := evaluator.New()
	if h.server.maxDepth > 0 {
		ev.MaxDepth = h.server.maxDepth
	}

	value, err := ev.Eval(node, env)
	if err != nil {
		_ = respMsg.TrySetFieldByName("ok", false)
		if evalErr, ok := err.(*evaluator.EvalError); ok {
			_ = respMsg.TrySetFieldByName("error_kind", string(evalErr.Kind))
		}
		_ = respMsg.TrySetFieldByName("error_message", err.Error())
		return respMsg, nil
	}

	_ = respMsg.TrySetFieldByName("ok", true)
	_ = respMsg.TrySetFieldByName("value_json", value.Inspect())
	return respMsg, nil
}

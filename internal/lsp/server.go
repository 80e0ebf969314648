package lsp

import (
	"bufio"
	"encoding/json"
	"io"

	"istudio/internal/version"
)

// Options configures server behavior. ExitOnShutdown matches the original
// scaffold's only knob; it is kept for parity even though this revision
// never sets it false.
type Options struct {
	ExitOnShutdown bool
}

func DefaultOptions() Options {
	return Options{ExitOnShutdown: true}
}

// Server runs the stdio JSON-RPC loop. It holds no workspace state beyond
// the shutdown/exit flags: each didOpen request re-runs the pipeline from
// scratch against the text it was sent.
type Server struct {
	options          Options
	shutdownReceived bool
	exitRequested    bool
	exitCode         int
}

func NewServer(options Options) *Server {
	return &Server{options: options}
}

// Run serves requests from in, writing responses and notifications to out,
// until an "exit" notification arrives or the input stream ends. It returns
// the process exit code the LSP contract dictates.
func (s *Server) Run(in io.Reader, out io.Writer) int {
	reader := bufio.NewReader(in)

	for {
		payload, err := readMessage(reader)
		if err != nil {
			return s.finalExitCode()
		}

		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.sendError(out, nil, errParseError, "Parse error")
			continue
		}

		s.handleMessage(out, &msg)
		if s.exitRequested {
			return s.exitCode
		}
	}
}

func (s *Server) finalExitCode() int {
	if s.exitRequested {
		return s.exitCode
	}
	return 0
}

func (s *Server) handleMessage(out io.Writer, msg *rpcMessage) {
	if msg.ID == nil {
		s.handleNotification(out, msg)
		return
	}
	s.handleRequest(out, msg)
}

func (s *Server) handleRequest(out io.Writer, msg *rpcMessage) {
	if msg.Method == "" {
		s.sendError(out, msg.ID, errInvalidRequest, "Invalid request")
		return
	}
	switch msg.Method {
	case "initialize":
		s.sendResponse(out, msg.ID, initializeResult{
			Capabilities: serverCapabilities{
				TextDocumentSync: textDocumentSyncOptions{OpenClose: true, Change: 2},
			},
			ServerInfo: serverInfo{Name: serverName(), Version: serverVersion()},
		})
	case "shutdown":
		s.shutdownReceived = true
		s.sendResponse(out, msg.ID, nil)
	default:
		s.sendError(out, msg.ID, errMethodNotFound, "Method not implemented")
	}
}

func (s *Server) handleNotification(out io.Writer, msg *rpcMessage) {
	switch msg.Method {
	case "exit":
		s.exitRequested = true
		if s.shutdownReceived {
			s.exitCode = 0
		} else {
			s.exitCode = 1
		}
	case "textDocument/didOpen":
		s.handleDidOpen(out, msg)
	}
	// Other notifications ("initialized", didChange/didClose, etc.) are
	// intentionally unhandled — this server only demonstrates the
	// open -> diagnostics loop.
}

func (s *Server) sendResponse(out io.Writer, id json.RawMessage, result any) {
	s.send(out, rpcResponse{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) sendError(out io.Writer, id json.RawMessage, code int, message string) {
	s.send(out, rpcResponse{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}})
}

func (s *Server) sendNotification(out io.Writer, method string, params any) {
	s.send(out, rpcNotification{JSONRPC: "2.0", Method: method, Params: params})
}

func (s *Server) send(out io.Writer, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = writeMessage(out, payload)
}

// serverName/serverVersion are used by tests and by callers wanting to log
// which build answered a session.
func serverName() string    { return "IStudio Language Server" }
func serverVersion() string { return version.Plain() }

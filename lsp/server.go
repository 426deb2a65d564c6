// Package lsp serves IPPcode24 parse diagnostics over the Language
// Server Protocol, on stdio, TCP, or a websocket endpoint.
package lsp

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
)

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// ListenAndServe serves a single LSP session over stdin/stdout and
// blocks until the client disconnects.
func ListenAndServe() {
	h := &handler{store: newDocumentStore()}
	<-jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), h).DisconnectNotify()
}

// ListenAndServeTCP accepts LSP sessions on a TCP address, one
// document store per connection.
func ListenAndServeTCP(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer lis.Close()

	log.Println("parse24 language server: listening for TCP connections on", addr)

	for {
		conn, err := lis.Accept()
		if err != nil {
			return err
		}
		h := &handler{store: newDocumentStore()}
		rpcConn := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}), h)
		go func() {
			<-rpcConn.DisconnectNotify()
			log.Println("parse24 language server: connection closed")
		}()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsrwc adapts a websocket connection to the io.ReadWriteCloser the
// jsonrpc2 stream wants, one protocol message per websocket frame.
type wsrwc struct {
	conn   *websocket.Conn
	reader io.Reader
}

func (w *wsrwc) Read(p []byte) (int, error) {
	for {
		if w.reader == nil {
			_, r, err := w.conn.NextReader()
			if err != nil {
				return 0, err
			}
			w.reader = r
		}
		n, err := w.reader.Read(p)
		if err == io.EOF {
			w.reader = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (w *wsrwc) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *wsrwc) Close() error {
	return w.conn.Close()
}

// ListenAndServeWebSocket serves LSP sessions upgraded from HTTP at
// /lsp on the given address.
func ListenAndServeWebSocket(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/lsp", func(rw http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(rw, r, nil)
		if err != nil {
			log.Println("parse24 language server: websocket upgrade:", err)
			return
		}
		h := &handler{store: newDocumentStore()}
		rpcConn := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(&wsrwc{conn: conn}, jsonrpc2.PlainObjectCodec{}), h)
		<-rpcConn.DisconnectNotify()
	})

	log.Println("parse24 language server: listening for websocket connections on", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}

type handler struct {
	store *documentStore
}

func (h *handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	switch req.Method {
	case "initialize":
		h.initialize(conn, req)
	case "textDocument/didOpen":
		h.store.didOpen(conn, req)
	case "textDocument/didChange":
		h.store.didChange(conn, req)
	case "textDocument/didClose":
		h.store.didClose(conn, req)
	case "textDocument/diagnostic":
		h.store.diagnostics(conn, req)

	// quitting
	case "shutdown":
		conn.Reply(context.Background(), req.ID, nil)
	case "exit":
		conn.Close()
	}
}

func (h *handler) initialize(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := InitializeParams{}
	if req.Params != nil {
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			replyInvalidParams(conn, req)
			return
		}
	}

	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = 1 // full document sync
	result.Capabilities.DiagnosticProvider = true
	conn.Reply(context.Background(), req.ID, result)
}

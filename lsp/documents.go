package lsp

import (
	"context"
	"encoding/json"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/Miffiny/IPP-1/ippcode"
)

// documentStore tracks the open documents of one connection.
type documentStore struct {
	docs map[DocumentUri]TextDocumentItem
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[DocumentUri]TextDocumentItem)}
}

func (store *documentStore) diagnose(uri DocumentUri) []ippcode.Diagnostic {
	return ippcode.Diagnose(store.docs[uri].Text)
}

func replyInvalidParams(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	rpcErr := jsonrpc2.Error{}
	rpcErr.SetError("invalid parameters")
	conn.ReplyWithError(context.Background(), req.ID, &rpcErr)
}

// decodeParams unmarshals the request parameters, guarding against a
// request that carries none.
func decodeParams(req *jsonrpc2.Request, v any) bool {
	if req.Params == nil {
		return false
	}
	return json.Unmarshal(*req.Params, v) == nil
}

func (store *documentStore) didOpen(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DidOpenTextDocumentParams{}
	if !decodeParams(req, &params) {
		replyInvalidParams(conn, req)
		return
	}

	store.docs[params.TextDocument.URI] = params.TextDocument

	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: store.diagnose(params.TextDocument.URI),
	})
}

func (store *documentStore) didChange(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DidChangeTextDocumentParams{}
	if !decodeParams(req, &params) || len(params.ContentChanges) == 0 {
		replyInvalidParams(conn, req)
		return
	}

	doc := store.docs[params.TextDocument.URI]
	doc.Text = params.ContentChanges[len(params.ContentChanges)-1].Text
	doc.Version = params.TextDocument.Version
	store.docs[params.TextDocument.URI] = doc

	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Version:     doc.Version,
		Diagnostics: store.diagnose(params.TextDocument.URI),
	})
}

func (store *documentStore) didClose(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DidCloseTextDocumentParams{}
	if !decodeParams(req, &params) {
		replyInvalidParams(conn, req)
		return
	}

	delete(store.docs, params.TextDocument.URI)
}

func (store *documentStore) diagnostics(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	params := DocumentDiagnosticsParams{}
	if !decodeParams(req, &params) {
		replyInvalidParams(conn, req)
		return
	}

	conn.Reply(context.Background(), req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: store.diagnose(params.TextDocument.URI),
	})
}

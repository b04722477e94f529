package adapter

import (
	"context"
	"encoding/json"
	"fmt"
)

type documentsAdapter struct {
	client     *Client
	databaseID string
}

// NewDocumentsAdapter constructs a documents adapter bound to databaseID.
// Document calls authenticate with the API key; access control is enforced
// by the services in front of it.
func NewDocumentsAdapter(client *Client, databaseID string) DocumentsAdapter {
	return &documentsAdapter{client: client, databaseID: databaseID}
}

func (a *documentsAdapter) path(collectionID string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents", a.databaseID, collectionID)
}

func (a *documentsAdapter) CreateDocument(ctx context.Context, collectionID, documentID string, data any) (json.RawMessage, error) {
	if documentID == "" {
		documentID = uniqueID
	}

	resp, err := a.client.keyRequest(ctx).
		SetBody(map[string]any{"documentId": documentID, "data": data}).
		Post(a.path(collectionID))
	if err != nil {
		return nil, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

func (a *documentsAdapter) GetDocument(ctx context.Context, collectionID, documentID string) (json.RawMessage, error) {
	resp, err := a.client.keyRequest(ctx).
		SetPathParam("documentId", documentID).
		Get(a.path(collectionID) + "/{documentId}")
	if err != nil {
		return nil, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

func (a *documentsAdapter) ListDocuments(ctx context.Context, collectionID string, queries ...Query) (DocumentList, error) {
	var list DocumentList
	resp, err := a.client.keyRequest(ctx).
		SetQueryParamsFromValues(encodeQueries(queries)).
		SetResult(&list).
		Get(a.path(collectionID))
	if err != nil {
		return DocumentList{}, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return DocumentList{}, err
	}

	return list, nil
}

func (a *documentsAdapter) UpdateDocument(ctx context.Context, collectionID, documentID string, data any) (json.RawMessage, error) {
	resp, err := a.client.keyRequest(ctx).
		SetPathParam("documentId", documentID).
		SetBody(map[string]any{"data": data}).
		Patch(a.path(collectionID) + "/{documentId}")
	if err != nil {
		return nil, fmt.Errorf("update document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

func (a *documentsAdapter) DeleteDocument(ctx context.Context, collectionID, documentID string) error {
	resp, err := a.client.keyRequest(ctx).
		SetPathParam("documentId", documentID).
		Delete(a.path(collectionID) + "/{documentId}")
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	return mapHTTPError(resp)
}

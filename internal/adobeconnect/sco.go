package adobeconnect

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// Shortcut types that hold meetings, in lookup order.
var meetingFolderTypes = []string{"meetings", "my-meetings"}

// MaxRecommendedParallel is the recommended upper limit for concurrent calls.
const MaxRecommendedParallel = 8

// ScoShortcuts lists the root folders of the account.
func (c *Client) ScoShortcuts(ctx context.Context) ([]Sco, error) {
	doc, err := c.call(ctx, "sco-shortcuts", nil, true)
	if err != nil {
		return nil, err
	}
	var scos []Sco
	for _, el := range doc.FindElements("//shortcuts/sco") {
		scos = append(scos, parseSco(el))
	}
	return scos, nil
}

// MeetingsFolder returns the shared meetings folder, or the user's own
// meetings folder when there is no shared one.
func (c *Client) MeetingsFolder(ctx context.Context) (Sco, error) {
	shortcuts, err := c.ScoShortcuts(ctx)
	if err != nil {
		return Sco{}, err
	}
	for _, typ := range meetingFolderTypes {
		for _, s := range shortcuts {
			if s.Type == typ {
				return s, nil
			}
		}
	}
	return Sco{}, fmt.Errorf("meetings folder: %w", ErrNotFound)
}

// validate checks the fields sco-update needs.
func (r MeetingRequest) validate() error {
	if r.Name == "" {
		return fmt.Errorf("meeting name is empty: %w", ErrInvalidRequest)
	}
	if !r.Begin.IsZero() && !r.End.IsZero() && !r.End.After(r.Begin) {
		return fmt.Errorf("meeting ends before it begins: %w", ErrInvalidRequest)
	}
	return nil
}

func (r MeetingRequest) params() url.Values {
	p := url.Values{}
	p.Set("name", r.Name)
	if r.Description != "" {
		p.Set("description", r.Description)
	}
	if r.URLPath != "" {
		p.Set("url-path", r.URLPath)
	}
	if r.TemplateID != "" {
		p.Set("source-sco-id", r.TemplateID)
	}
	if !r.Begin.IsZero() {
		p.Set("date-begin", formatDate(r.Begin))
	}
	if !r.End.IsZero() {
		p.Set("date-end", formatDate(r.End))
	}
	return p
}

// CreateMeeting creates a meeting room in folderID.
func (c *Client) CreateMeeting(ctx context.Context, folderID string, req MeetingRequest) (Sco, error) {
	if err := req.validate(); err != nil {
		return Sco{}, err
	}
	if folderID == "" {
		return Sco{}, fmt.Errorf("folder id is empty: %w", ErrInvalidRequest)
	}

	params := req.params()
	params.Set("type", "meeting")
	params.Set("folder-id", folderID)

	doc, err := c.call(ctx, "sco-update", params, true)
	if err != nil {
		return Sco{}, err
	}
	el := doc.FindElement("//sco")
	if el == nil {
		return Sco{}, fmt.Errorf("sco-update: no sco element: %w", ErrMalformedResponse)
	}
	return parseSco(el), nil
}

// UpdateMeeting changes an existing meeting.
func (c *Client) UpdateMeeting(ctx context.Context, scoID string, req MeetingRequest) error {
	if err := req.validate(); err != nil {
		return err
	}
	if scoID == "" {
		return fmt.Errorf("sco id is empty: %w", ErrInvalidRequest)
	}

	params := req.params()
	params.Set("sco-id", scoID)

	_, err := c.call(ctx, "sco-update", params, true)
	return err
}

// DeleteSco deletes a meeting, folder, or any other sco.
func (c *Client) DeleteSco(ctx context.Context, scoID string) error {
	if scoID == "" {
		return fmt.Errorf("sco id is empty: %w", ErrInvalidRequest)
	}
	params := url.Values{}
	params.Set("sco-id", scoID)
	_, err := c.call(ctx, "sco-delete", params, true)
	return err
}

// ScoInfo returns a single sco.
func (c *Client) ScoInfo(ctx context.Context, scoID string) (Sco, error) {
	if scoID == "" {
		return Sco{}, fmt.Errorf("sco id is empty: %w", ErrInvalidRequest)
	}
	params := url.Values{}
	params.Set("sco-id", scoID)

	doc, err := c.call(ctx, "sco-info", params, true)
	if err != nil {
		return Sco{}, err
	}
	el := doc.FindElement("//sco")
	if el == nil {
		return Sco{}, fmt.Errorf("sco-info: no sco element: %w", ErrMalformedResponse)
	}
	return parseSco(el), nil
}

// ScoInfoAll fetches several scos in parallel.
// Results are returned in the same order as ids. If any call fails, the
// remaining calls are cancelled and the first error is returned.
// maxParallel limits concurrent requests (1-MaxRecommendedParallel recommended).
func (c *Client) ScoInfoAll(ctx context.Context, ids []string, maxParallel int) ([]Sco, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if maxParallel < 1 {
		maxParallel = 1
	}

	// The session is shared; obtain it once before fanning out.
	if _, err := c.ensureSession(ctx); err != nil {
		return nil, err
	}

	results := make([]Sco, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, id := range ids {
		g.Go(func() error {
			sco, err := c.ScoInfo(ctx, id)
			if err != nil {
				return fmt.Errorf("sco %s: %w", id, err)
			}
			results[i] = sco
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SetPermission grants perm on aclID (a sco id) to principalID.
func (c *Client) SetPermission(ctx context.Context, aclID, principalID string, perm Permission) error {
	if _, ok := ParsePermission(string(perm)); !ok {
		return fmt.Errorf("unknown permission %q: %w", perm, ErrInvalidRequest)
	}
	if aclID == "" || principalID == "" {
		return fmt.Errorf("acl id and principal id are required: %w", ErrInvalidRequest)
	}

	params := url.Values{}
	params.Set("acl-id", aclID)
	params.Set("principal-id", principalID)
	params.Set("permission-id", string(perm))

	_, err := c.call(ctx, "permissions-update", params, true)
	return err
}

// MakePublic lets anyone with the room URL enter the meeting.
func (c *Client) MakePublic(ctx context.Context, scoID string) error {
	return c.SetPermission(ctx, scoID, publicAccessPrincipal, PermissionViewHidden)
}

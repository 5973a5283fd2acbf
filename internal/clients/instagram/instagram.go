package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a thin wrapper over the Instagram Graph API used for content
// publishing. Publishing is a two-step flow: create a media container from a
// public image URL, then publish the container.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://graph.instagram.com"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// APIError is the graph error object. Code 190 means the access token is
// expired or revoked; code 200 means missing permissions.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
	Subcode int    `json:"error_subcode,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("instagram api error (%d): %s", e.Code, e.Message)
}

func (e *APIError) IsInvalidToken() bool {
	return e.Code == 190
}

func (e *APIError) IsPermission() bool {
	return e.Code == 200 || strings.Contains(strings.ToLower(e.Message), "permission")
}

type Account struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccountType string `json:"account_type"`
}

// CanPublish reports whether the account type is allowed to use the content
// publishing API.
func (a Account) CanPublish() bool {
	return a.AccountType == "BUSINESS" || a.AccountType == "CREATOR"
}

type Media struct {
	ID            string `json:"id"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
	Permalink     string `json:"permalink"`
	Caption       string `json:"caption,omitempty"`
	Timestamp     string `json:"timestamp"`
	LikeCount     int    `json:"like_count,omitempty"`
	CommentsCount int    `json:"comments_count,omitempty"`
}

type Comment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
	LikeCount int    `json:"like_count,omitempty"`
}

type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}

type errBody struct {
	Error *APIError `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// The graph API reports failures in the body, sometimes with HTTP 200.
	var eb errBody
	if json.Unmarshal(body, &eb) == nil && eb.Error != nil {
		return eb.Error
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("instagram http error (%d): %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// ValidateToken resolves the token owner's account.
func (c *Client) ValidateToken(ctx context.Context, accessToken string) (*Account, error) {
	q := url.Values{}
	q.Set("fields", "id,username,account_type")
	q.Set("access_token", accessToken)

	var acc Account
	if err := c.get(ctx, "/me", q, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateMediaContainer registers an image for publishing. The image URL must
// be publicly reachable over HTTPS.
func (c *Client) CreateMediaContainer(ctx context.Context, accessToken, imageURL, caption string) (string, error) {
	form := url.Values{}
	form.Set("image_url", imageURL)
	form.Set("caption", caption)
	form.Set("media_type", "IMAGE")
	form.Set("access_token", accessToken)

	var out struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, "/me/media", form, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("instagram returned no container id")
	}
	return out.ID, nil
}

// PublishMedia publishes a previously created container and returns the
// media id.
func (c *Client) PublishMedia(ctx context.Context, accessToken, containerID string) (string, error) {
	form := url.Values{}
	form.Set("creation_id", containerID)
	form.Set("access_token", accessToken)

	var out struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, "/me/media_publish", form, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("instagram returned no media id")
	}
	return out.ID, nil
}

// ListMedia returns the user's recent media.
func (c *Client) ListMedia(ctx context.Context, accessToken, userID string) ([]Media, *Paging, error) {
	q := url.Values{}
	q.Set("fields", "id,media_type,media_url,thumbnail_url,permalink,caption,timestamp,like_count,comments_count")
	q.Set("limit", "50")
	q.Set("access_token", accessToken)

	var out struct {
		Data   []Media `json:"data"`
		Paging *Paging `json:"paging"`
	}
	if err := c.get(ctx, "/"+userID+"/media", q, &out); err != nil {
		return nil, nil, err
	}
	return out.Data, out.Paging, nil
}

// ListComments returns the comments on one media object.
func (c *Client) ListComments(ctx context.Context, accessToken, mediaID string) ([]Comment, error) {
	q := url.Values{}
	q.Set("fields", "id,text,username,timestamp,like_count")
	q.Set("access_token", accessToken)

	var out struct {
		Data []Comment `json:"data"`
	}
	if err := c.get(ctx, "/"+mediaID+"/comments", q, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ReplyToComment posts a reply under an existing comment.
func (c *Client) ReplyToComment(ctx context.Context, accessToken, commentID, message string) (string, error) {
	form := url.Values{}
	form.Set("message", message)
	form.Set("access_token", accessToken)

	var out struct {
		ID string `json:"id"`
	}
	if err := c.postForm(ctx, "/"+commentID+"/replies", form, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

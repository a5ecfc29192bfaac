package remote

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"parley/internal/crypto"
	"parley/internal/domain"
)

// Identification headers; the server uses them to track channel presence.
const (
	headerName = "X-Parley-Name"
	headerKey  = "X-Parley-Key"
)

// HTTP talks to one channel on one server as one local profile.
type HTTP struct {
	Base    string
	Channel string
	Self    domain.Profile
	HTTP    *http.Client

	// Sign, when set, produces the authorship signature posts carry so
	// other clients can verify the claimed identity.
	Sign func(payload []byte) []byte
}

// NewHTTP returns a client bound to base/channel, identifying as self.
func NewHTTP(base, channel string, self domain.Profile) *HTTP {
	return &HTTP{Base: base, Channel: channel, Self: self, HTTP: http.DefaultClient}
}

// Ping reports whether the channel service answers at all.
func (c *HTTP) Ping(ctx context.Context) bool {
	var out struct {
		Status string `json:"status"`
	}
	return c.getJSON(ctx, "/api/ping", &out) == nil
}

// Messages fetches the most recent messages up to limit, oldest first.
func (c *HTTP) Messages(ctx context.Context, limit int) ([]domain.Message, error) {
	p := c.channelPath("messages")
	if limit > 0 {
		p += "?limit=" + strconv.Itoa(limit)
	}
	var msgs []domain.Message
	if err := c.getJSON(ctx, p, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// OnlineUsers fetches the display names currently present in the channel.
func (c *HTTP) OnlineUsers(ctx context.Context) ([]string, error) {
	var users []string
	if err := c.getJSON(ctx, c.channelPath("users"), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Post submits text and returns the stored message, identifier and
// timestamp assigned by the server.
func (c *HTTP) Post(ctx context.Context, text string) (domain.Message, error) {
	in := struct {
		Creator   string `json:"creatorName"`
		PublicKey string `json:"publicKey"`
		Text      string `json:"text"`
		Signature string `json:"signature,omitempty"`
	}{Creator: c.Self.Name, PublicKey: c.Self.PublicKey, Text: text}
	if c.Sign != nil {
		payload := crypto.AuthPayload(c.Self.Name, c.Self.PublicKey, text)
		in.Signature = hex.EncodeToString(c.Sign(payload))
	}

	var out domain.Message
	if err := c.post(ctx, c.channelPath("messages"), in, &out); err != nil {
		return domain.Message{}, err
	}
	return out, nil
}

func (c *HTTP) channelPath(leaf string) string {
	return "/api/channels/" + url.PathEscape(c.Channel) + "/" + leaf
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.identify(req)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("channel post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	c.identify(req)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("channel get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTP) identify(req *http.Request) {
	if c.Self.Name != "" {
		req.Header.Set(headerName, c.Self.Name)
	}
	if c.Self.PublicKey != "" {
		req.Header.Set(headerKey, c.Self.PublicKey)
	}
}

var _ domain.ChannelClient = (*HTTP)(nil)

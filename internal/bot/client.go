package bot

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// DefaultServerURL is the public simulator's websocket endpoint.
const DefaultServerURL = "wss://sim.psim.us/showdown/websocket"

// loginURL is the login action endpoint paired with the public simulator.
const loginURL = "https://play.pokemonshowdown.com/action.php"

// ServerMessage is one `|`-delimited protocol line, tagged with the room it
// arrived in ("" for the global room).
type ServerMessage struct {
	Room string
	Line string
}

// Client is a WebSocket client for one bot account on a Showdown server.
type Client struct {
	name      string
	password  string
	serverURL string
	conn      *websocket.Conn
	messages  chan ServerMessage
	httpC     *http.Client
	mu        sync.Mutex
	closed    bool
}

// NewClient creates a client for the given account. An empty serverURL
// targets the public simulator.
func NewClient(name, password, serverURL string) *Client {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	return &Client{
		name:      name,
		password:  password,
		serverURL: serverURL,
		messages:  make(chan ServerMessage, 256),
		httpC:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the account name.
func (c *Client) Name() string { return c.name }

// Connect opens the WebSocket connection and starts the read loop. Login
// happens later, when the server's challstr arrives.
func (c *Client) Connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("ws dial %s: %w", c.serverURL, err)
	}
	c.conn = conn

	go c.readLoop()
	log.Info().Str("server", c.serverURL).Str("name", c.name).Msg("Connected")
	return nil
}

// Messages returns the channel of incoming protocol lines.
func (c *Client) Messages() <-chan ServerMessage { return c.messages }

// Close shuts down the connection.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil && !c.closed {
		c.closed = true
		c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

// readLoop splits incoming frames into per-room protocol lines. A frame is
// either a block prefixed with ">roomid\n" or global-room lines.
func (c *Client) readLoop() {
	defer close(c.messages)
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if !c.closed {
				log.Debug().Err(err).Str("name", c.name).Msg("WS read error")
			}
			return
		}

		room := ""
		lines := strings.Split(string(msg), "\n")
		for _, line := range lines {
			if strings.HasPrefix(line, ">") {
				room = strings.TrimPrefix(line, ">")
				continue
			}
			if line == "" {
				continue
			}
			c.messages <- ServerMessage{Room: room, Line: line}
		}
	}
}

// Send writes one raw message ("room|text" form, empty room for global).
func (c *Client) Send(room, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || c.closed {
		return fmt.Errorf("not connected")
	}
	return c.conn.WriteMessage(websocket.TextMessage, []byte(room+"|"+text))
}

// Login answers a challstr by fetching an assertion from the login endpoint
// and sending /trn. Accounts without a password log in as guests.
func (c *Client) Login(challstr string) error {
	form := url.Values{}
	if c.password == "" {
		form.Set("act", "getassertion")
		form.Set("userid", userID(c.name))
	} else {
		form.Set("act", "login")
		form.Set("name", c.name)
		form.Set("pass", c.password)
	}
	form.Set("challstr", challstr)

	resp, err := c.httpC.PostForm(loginURL, form)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read login response: %w", err)
	}

	assertion := string(body)
	if c.password != "" {
		// Login responses are "]" followed by a JSON body.
		var parsed struct {
			ActionSuccess bool   `json:"actionsuccess"`
			Assertion     string `json:"assertion"`
		}
		if err := json.Unmarshal(body[1:], &parsed); err != nil {
			return fmt.Errorf("decode login response: %w", err)
		}
		if !parsed.ActionSuccess {
			return fmt.Errorf("login rejected for %s", c.name)
		}
		assertion = parsed.Assertion
	}
	if strings.HasPrefix(assertion, ";") {
		return fmt.Errorf("login assertion refused: %s", assertion)
	}

	if err := c.Send("", fmt.Sprintf("/trn %s,0,%s", c.name, assertion)); err != nil {
		return err
	}
	log.Info().Str("name", c.name).Msg("Logged in")
	return nil
}

// UseTeam registers a packed team for subsequent searches and challenges.
func (c *Client) UseTeam(packed string) error {
	return c.Send("", "/utm "+packed)
}

// Search queues for a ladder battle in the given format.
func (c *Client) Search(format string) error {
	return c.Send("", "/search "+format)
}

// CancelSearch leaves the ladder queue.
func (c *Client) CancelSearch() error {
	return c.Send("", "/cancelsearch")
}

// Challenge challenges a named user in the given format.
func (c *Client) Challenge(user, format string) error {
	return c.Send("", fmt.Sprintf("/challenge %s, %s", user, format))
}

// AcceptChallenge accepts a pending challenge from a user.
func (c *Client) AcceptChallenge(user string) error {
	return c.Send("", "/accept "+user)
}

// Choose sends a battle decision for the request identified by rqid.
func (c *Client) Choose(room, choice string, rqid int) error {
	if rqid > 0 {
		return c.Send(room, fmt.Sprintf("/choose %s|%d", choice, rqid))
	}
	return c.Send(room, "/choose "+choice)
}

// ChatBattle says something in a battle room.
func (c *Client) ChatBattle(room, text string) error {
	return c.Send(room, text)
}

// LeaveRoom leaves a (usually finished) battle room.
func (c *Client) LeaveRoom(room string) error {
	return c.Send("", "/leave "+room)
}

// userID normalizes a display name to a server user id.
func userID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

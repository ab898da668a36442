// Package main provides a simple CLI client for driving the SkillByte feed
// over WebSocket: scroll events in, active-video and assist pushes out.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Message types
const (
	TypeHello         = "hello"
	TypeHelloAck      = "hello_ack"
	TypeViewportEvent = "viewport_event"
	TypeAssistOpen    = "assist_open"
	TypeAssistAnswer  = "assist_answer"
	TypeAssistClose   = "assist_close"
	TypeMarkWatched   = "mark_watched"
	TypeError         = "error"
)

// BaseMessage contains common fields for all messages.
type BaseMessage struct {
	Type      string `json:"type"`
	Ts        int64  `json:"ts"`
	RequestID string `json:"request_id,omitempty"`
}

// HelloMessage binds the connection to an app session.
type HelloMessage struct {
	BaseMessage
	Token string `json:"token"`
}

// ViewportEventMessage reports one feed item's visibility.
type ViewportEventMessage struct {
	BaseMessage
	Index int     `json:"index"`
	Ratio float64 `json:"ratio"`
}

// AssistOpenMessage opens the assist panel.
type AssistOpenMessage struct {
	BaseMessage
	VideoID string `json:"video_id,omitempty"`
}

// AssistAnswerMessage submits a quiz answer.
type AssistAnswerMessage struct {
	BaseMessage
	Option int `json:"option"`
}

// MarkWatchedMessage records a completed video.
type MarkWatchedMessage struct {
	BaseMessage
	VideoID string `json:"video_id"`
}

// ErrorMessage represents an error from the server.
type ErrorMessage struct {
	BaseMessage
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client represents a WebSocket feed client.
type Client struct {
	conn  *websocket.Conn
	token string
	done  chan struct{}
}

// login creates an app session over HTTP and returns the session token.
func login(apiURL, name string) (string, error) {
	body, _ := json.Marshal(map[string]string{"name": name})
	resp, err := http.Post(apiURL+"/v1/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed: status %d", resp.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return out.Token, nil
}

// NewClient creates a new client and connects to the server.
func NewClient(addr, token string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	return &Client{
		conn:  conn,
		token: token,
		done:  make(chan struct{}),
	}, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	close(c.done)
	return c.conn.Close()
}

// SendHello sends a hello message and waits for hello_ack.
func (c *Client) SendHello() error {
	msg := HelloMessage{
		BaseMessage: BaseMessage{
			Type: TypeHello,
			Ts:   time.Now().UnixMilli(),
		},
		Token: c.token,
	}

	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("write hello: %w", err)
	}

	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("read hello_ack: %w", err)
	}

	var base BaseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		return fmt.Errorf("unmarshal hello_ack: %w", err)
	}

	if base.Type == TypeError {
		var errMsg ErrorMessage
		json.Unmarshal(data, &errMsg)
		return fmt.Errorf("hello failed: %s - %s", errMsg.Code, errMsg.Message)
	}

	if base.Type != TypeHelloAck {
		return fmt.Errorf("expected hello_ack, got: %s", base.Type)
	}
	return nil
}

// SendViewportEvent reports the feed item at index as fully visible.
func (c *Client) SendViewportEvent(index int, ratio float64) error {
	return c.conn.WriteJSON(ViewportEventMessage{
		BaseMessage: BaseMessage{
			Type:      TypeViewportEvent,
			Ts:        time.Now().UnixMilli(),
			RequestID: fmt.Sprintf("req_%d", time.Now().UnixNano()),
		},
		Index: index,
		Ratio: ratio,
	})
}

// SendAssistOpen opens the assist panel for the active video.
func (c *Client) SendAssistOpen(videoID string) error {
	return c.conn.WriteJSON(AssistOpenMessage{
		BaseMessage: BaseMessage{Type: TypeAssistOpen, Ts: time.Now().UnixMilli()},
		VideoID:     videoID,
	})
}

// SendAssistAnswer submits a quiz answer.
func (c *Client) SendAssistAnswer(option int) error {
	return c.conn.WriteJSON(AssistAnswerMessage{
		BaseMessage: BaseMessage{Type: TypeAssistAnswer, Ts: time.Now().UnixMilli()},
		Option:      option,
	})
}

// SendAssistClose closes the assist panel.
func (c *Client) SendAssistClose() error {
	return c.conn.WriteJSON(BaseMessage{Type: TypeAssistClose, Ts: time.Now().UnixMilli()})
}

// SendMarkWatched records a completed video.
func (c *Client) SendMarkWatched(videoID string) error {
	return c.conn.WriteJSON(MarkWatchedMessage{
		BaseMessage: BaseMessage{Type: TypeMarkWatched, Ts: time.Now().UnixMilli()},
		VideoID:     videoID,
	})
}

// ReadMessages reads and prints messages from the server.
func (c *Client) ReadMessages() {
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.Printf("Read error: %v", err)
				}
				return
			}

			var base BaseMessage
			if err := json.Unmarshal(data, &base); err != nil {
				log.Printf("Unmarshal error: %v", err)
				continue
			}

			// Pretty print the message
			var prettyJSON map[string]interface{}
			json.Unmarshal(data, &prettyJSON)
			formatted, _ := json.MarshalIndent(prettyJSON, "", "  ")
			fmt.Printf("\n[%s] Received:\n%s\n", base.Type, string(formatted))
		}
	}
}

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket server address")
	apiURL := flag.String("api", "http://localhost:8080", "HTTP API base URL")
	name := flag.String("name", "Alex Learner", "Display name for the session")
	flag.Parse()

	log.SetFlags(log.Ltime)

	fmt.Printf("Logging in at %s...\n", *apiURL)

	token, err := login(*apiURL, *name)
	if err != nil {
		log.Fatalf("Failed to log in: %v", err)
	}

	fmt.Printf("Connecting to %s...\n", *addr)

	client, err := NewClient(*addr, token)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer client.Close()

	fmt.Println("Connected. Sending hello...")

	if err := client.SendHello(); err != nil {
		log.Fatalf("Hello failed: %v", err)
	}

	fmt.Printf("Session established: %s\n", token)
	fmt.Println("\nType a feed index to scroll there.")
	fmt.Println("Commands: /assist [video_id], /answer N, /close, /watch VIDEO_ID, /quit")

	// Start reading messages in background
	go client.ReadMessages()

	// Handle Ctrl+C
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	// Read user input
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		select {
		case <-interrupt:
			fmt.Println("\nInterrupted")
			return
		default:
			if !scanner.Scan() {
				return
			}

			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}

			switch {
			case input == "/quit":
				fmt.Println("Bye!")
				return
			case input == "/assist":
				err = client.SendAssistOpen("")
			case strings.HasPrefix(input, "/assist "):
				err = client.SendAssistOpen(strings.TrimPrefix(input, "/assist "))
			case strings.HasPrefix(input, "/answer "):
				option, convErr := strconv.Atoi(strings.TrimPrefix(input, "/answer "))
				if convErr != nil {
					fmt.Println("Usage: /answer N")
					continue
				}
				err = client.SendAssistAnswer(option)
			case input == "/close":
				err = client.SendAssistClose()
			case strings.HasPrefix(input, "/watch "):
				err = client.SendMarkWatched(strings.TrimPrefix(input, "/watch "))
			default:
				index, convErr := strconv.Atoi(input)
				if convErr != nil {
					fmt.Println("Type a feed index or a /command")
					continue
				}
				err = client.SendViewportEvent(index, 1.0)
			}

			if err != nil {
				log.Printf("Send error: %v", err)
			}
		}
	}
}

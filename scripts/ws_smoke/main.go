package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/driftchat/driftchat-server/internal/proto"
)

// Dials two connections, matches them and exchanges one message.
func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3000/ws", "WebSocket address")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 10*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	connA, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial A: %w", err)
	}
	defer connA.Close(websocket.StatusNormalClosure, "bye")

	connB, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial B: %w", err)
	}
	defer connB.Close(websocket.StatusNormalClosure, "bye")

	find, err := json.Marshal(proto.FindPartnerData{Language: "en"})
	if err != nil {
		return fmt.Errorf("marshal find-partner: %w", err)
	}
	for name, conn := range map[string]*websocket.Conn{"A": connA, "B": connB} {
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: proto.InboundTypeFindPartner, Data: find}); err != nil {
			return fmt.Errorf("send find-partner (%s): %w", name, err)
		}
	}

	if err := waitFor(ctx, connA, proto.EventPartnerFound); err != nil {
		return fmt.Errorf("A waiting for partner: %w", err)
	}
	if err := waitFor(ctx, connB, proto.EventPartnerFound); err != nil {
		return fmt.Errorf("B waiting for partner: %w", err)
	}
	fmt.Println("matched")

	msg, err := json.Marshal(proto.SendMessageData{Text: *text})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if err := wsjson.Write(ctx, connA, proto.Inbound{Type: proto.InboundTypeSendMessage, Data: msg}); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	var outbound proto.Outbound
	for {
		if err := wsjson.Read(ctx, connB, &outbound); err != nil {
			return fmt.Errorf("read on B: %w", err)
		}
		if outbound.Event == proto.EventReceiveMessage {
			break
		}
	}

	raw, err := json.Marshal(outbound.Data)
	if err != nil {
		return fmt.Errorf("marshal outbound data: %w", err)
	}
	var received proto.ReceiveMessageData
	if err := json.Unmarshal(raw, &received); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}
	fmt.Printf("B received: text=%q timestamp=%s\n", received.Text, received.Timestamp)
	return nil
}

func waitFor(ctx context.Context, conn *websocket.Conn, event string) error {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return err
		}
		if outbound.Event == event {
			return nil
		}
	}
}

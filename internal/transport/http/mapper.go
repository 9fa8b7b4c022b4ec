package http

import (
	"encoding/json"

	"github.com/driftchat/driftchat-server/internal/core"
	"github.com/driftchat/driftchat-server/internal/proto"
)

// dispatch applies one inbound envelope to the matchmaker. A non-nil
// proto.Error is reported back to the client; a non-nil error tears the
// connection down.
func (h *WSHandler) dispatch(cl *client, inbound proto.Inbound) (*proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeFindPartner:
		var find proto.FindPartnerData
		if len(inbound.Data) > 0 {
			if err := json.Unmarshal(inbound.Data, &find); err != nil {
				return nil, err
			}
		}
		h.matchmaker.RequestPartner(cl.id, find.Interests, find.Language)
		return nil, nil
	case proto.InboundTypeSendMessage:
		var msg proto.SendMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, err
		}
		if msg.Text == "" {
			return &proto.Error{Code: "bad_request", Msg: "text is required"}, nil
		}
		h.matchmaker.RelayMessage(cl.id, msg.Text)
		return nil, nil
	case proto.InboundTypeTyping:
		var typing bool
		if err := json.Unmarshal(inbound.Data, &typing); err != nil {
			return nil, err
		}
		h.matchmaker.RelayTyping(cl.id, typing)
		return nil, nil
	case proto.InboundTypeSkipPartner:
		h.matchmaker.Skip(cl.id)
		return nil, nil
	default:
		return &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(ev core.Event) proto.Outbound {
	switch ev.Kind {
	case core.EventSearching:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventSearching,
			Data:  proto.SearchingData{Count: ev.Count},
		}
	case core.EventPartnerFound:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPartnerFound,
		}
	case core.EventMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventReceiveMessage,
			Data: proto.ReceiveMessageData{
				Text:      ev.Text,
				Timestamp: ev.Timestamp,
			},
		}
	case core.EventPartnerTyping:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPartnerTyping,
			Data:  ev.Typing,
		}
	case core.EventPartnerDisconnected:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPartnerDisconnected,
		}
	case core.EventPartnerSkipped:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventPartnerSkipped,
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

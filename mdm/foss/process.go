package foss

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/micromdm/nanodevice/mdm"

	"github.com/micromdm/plist"
)

// MDMCommandResponseEventer receives command reports (acknowledge events).
type MDMCommandResponseEventer interface {
	MDMCommandResponseEvent(ctx context.Context, id string, uuid string, raw []byte, mdmContext *mdm.Context) error
}

// MDMCheckinEventer receives decoded check-in messages.
type MDMCheckinEventer interface {
	MDMCheckinEvent(ctx context.Context, id string, checkin interface{}, mdmContext *mdm.Context) error
}

// MDMEventReceiver receives both kinds of webhook events.
type MDMEventReceiver interface {
	MDMCommandResponseEventer
	MDMCheckinEventer
}

func idAndContext(udid, eid string, params map[string]string) (id string, mdmContext *mdm.Context) {
	id = udid
	if id == "" {
		id = eid
	}
	if len(params) > 0 {
		mdmContext = &mdm.Context{Params: params}
	}
	return
}

func processAcknowledgeEvent(ctx context.Context, e *AcknowledgeEvent, ev MDMCommandResponseEventer) error {
	if e == nil {
		return errors.New("empty acknowledge event")
	}
	if e.Status == "Idle" || e.CommandUUID == "" {
		return nil
	}
	id, mdmContext := idAndContext(e.UDID, e.EnrollmentID, e.Params)
	return ev.MDMCommandResponseEvent(ctx, id, e.CommandUUID, e.RawPayload, mdmContext)
}

func processCheckinEvent(ctx context.Context, topic string, e *CheckinEvent, ev MDMCheckinEventer) error {
	if e == nil {
		return errors.New("empty checkin event")
	}
	if !strings.HasPrefix(topic, "mdm.") {
		// the topic is a prefixed MessageType
		return errors.New("checkin topic incorrect prefix")
	}
	topic = topic[4:]
	checkin := mdm.NewCheckinFromMessageType(topic)
	if checkin == nil {
		return fmt.Errorf("no checkin type for message type: %s", topic)
	}
	if err := plist.Unmarshal(e.RawPayload, checkin); err != nil {
		return fmt.Errorf("unmarshal checkin: %w", err)
	}
	id, mdmContext := idAndContext(e.UDID, e.EnrollmentID, e.Params)
	return ev.MDMCheckinEvent(ctx, id, checkin, mdmContext)
}

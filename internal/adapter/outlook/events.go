package outlook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	abstractions "github.com/microsoft/kiota-abstractions-go"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/users"

	"slacktime/internal/core"
)

// FetchEvents retrieves the mailbox's calendar view for [start, end],
// following pagination until exhausted. A Graph-side error yields an
// empty event list, not a failure: an unreadable mailbox reports zero
// meeting hours rather than poisoning the batch.
func (a *Adapter) FetchEvents(ctx context.Context, mailbox string, start, end time.Time) ([]core.CalendarEvent, error) {
	if a.client == nil {
		return nil, fmt.Errorf("graph client not initialized, call Login first")
	}

	startStr := start.UTC().Format(time.RFC3339)
	endStr := end.UTC().Format(time.RFC3339)
	selectFields := []string{"subject", "start", "end"}
	top := int32(100)

	headers := abstractions.NewRequestHeaders()
	headers.Add("Prefer", fmt.Sprintf("outlook.timezone=%q", a.timezone))

	config := &users.ItemCalendarViewRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.ItemCalendarViewRequestBuilderGetQueryParameters{
			StartDateTime: &startStr,
			EndDateTime:   &endStr,
			Select:        selectFields,
			Top:           &top,
		},
		Headers: headers,
	}

	result, err := a.client.Users().ByUserId(mailbox).CalendarView().Get(ctx, config)
	if err != nil {
		slog.Warn("calendar view fetch failed, treating as no events", "mailbox", mailbox, "err", err)
		return []core.CalendarEvent{}, nil
	}

	pageIterator, err := msgraphcore.NewPageIterator[models.Eventable](
		result,
		a.client.GetAdapter(),
		models.CreateEventCollectionResponseFromDiscriminatorValue,
	)
	if err != nil {
		return nil, fmt.Errorf("create page iterator: %w", err)
	}

	var events []core.CalendarEvent
	err = pageIterator.Iterate(ctx, func(item models.Eventable) bool {
		events = append(events, core.CalendarEvent{
			Subject: derefStr(item.GetSubject()),
			Start:   eventTime(item.GetStart()),
			End:     eventTime(item.GetEnd()),
		})
		return true
	})
	if err != nil {
		slog.Warn("calendar view pagination failed, treating as no events", "mailbox", mailbox, "err", err)
		return []core.CalendarEvent{}, nil
	}

	return events, nil
}

// eventTime copies a Graph DateTimeTimeZone into the provider-neutral
// form. Graph reports stamps in the zone requested via the Prefer
// header, named in the TimeZone field.
func eventTime(dt models.DateTimeTimeZoneable) core.EventTime {
	if dt == nil {
		return core.EventTime{}
	}
	return core.EventTime{
		DateTime: derefStr(dt.GetDateTime()),
		TimeZone: derefStr(dt.GetTimeZone()),
	}
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscoders(t *testing.T) {
	tests := []struct {
		in     string
		pascal string
		snake  string
		kebab  string
	}{
		{in: "Open", pascal: "Open", snake: "open", kebab: "open"},
		{in: "InDev", pascal: "In Dev", snake: "in_dev", kebab: "in-dev"},
		{in: "InQA", pascal: "In QA", snake: "in_qa", kebab: "in-qa"},
		{in: "HTTPServer", pascal: "HTTPServer", snake: "httpserver", kebab: "httpserver"},
		{in: "ParseHTTPResponse", pascal: "Parse HTTPResponse", snake: "parse_httpresponse", kebab: "parse-httpresponse"},
		{in: "A", pascal: "A", snake: "a", kebab: "a"},
		{in: "", pascal: "", snake: "", kebab: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.pascal, PascalSpaced(tt.in))
			assert.Equal(t, tt.snake, SnakeCase(tt.in))
			assert.Equal(t, tt.kebab, KebabCase(tt.in))
		})
	}
}

// A second pass over already transcoded output changes nothing: separators
// classify as neither upper nor lower, so no new boundaries appear.
func TestTranscodersIdempotent(t *testing.T) {
	for _, in := range []string{"InQA", "TicketStatus", "Closed"} {
		assert.Equal(t, PascalSpaced(in), PascalSpaced(PascalSpaced(in)))
		assert.Equal(t, SnakeCase(in), SnakeCase(SnakeCase(in)))
		assert.Equal(t, KebabCase(in), KebabCase(KebabCase(in)))
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "width", want: "Width"},
		{in: "ticket_id", want: "TicketID"},
		{in: "base_url", want: "BaseURL"},
		{in: "http_status", want: "HTTPStatus"},
		{in: "created-at", want: "CreatedAt"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Pascal(tt.in))
		})
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "TicketStatuses", Plural("TicketStatus"))
	assert.Equal(t, "Colors", Plural("Color"))
	assert.Equal(t, "Priorities", Plural("Priority"))
}

func TestReceiver(t *testing.T) {
	assert.Equal(t, "t", Receiver("TicketStatus"))
	assert.Equal(t, "c", Receiver("Color"))
	assert.Equal(t, "x", Receiver(""))
}

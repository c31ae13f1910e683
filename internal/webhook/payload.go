package webhook

const unknownSender = "Desconhecido"

// Message is what the pipeline needs out of a gateway delivery.
type Message struct {
	ConversationID string
	Sender         string
	Text           string
}

// ParseMessage reads the delivery fields with safe lookups; missing keys or
// unexpected types resolve to empty values instead of failing.
//
//	data.message.remoteJid                        conversation id
//	data.pushName                                 sender, then
//	data.message.extendedTextMessage.text         as sender fallback, then "Desconhecido"
//	data.message.conversation                     text, then
//	data.message.extendedTextMessage.text         as text fallback
func ParseMessage(payload map[string]any) Message {
	extended := lookupString(payload, "data", "message", "extendedTextMessage", "text")

	return Message{
		ConversationID: lookupString(payload, "data", "message", "remoteJid"),
		Sender:         firstNonEmpty(lookupString(payload, "data", "pushName"), extended, unknownSender),
		Text:           firstNonEmpty(lookupString(payload, "data", "message", "conversation"), extended),
	}
}

// lookupString walks nested objects along path and returns the string at the end,
// or "" when any step is missing or not of the expected type.
func lookupString(m map[string]any, path ...string) string {
	if len(path) == 0 {
		return ""
	}

	cur := m

	for _, key := range path[:len(path)-1] {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return ""
		}

		cur = next
	}

	s, _ := cur[path[len(path)-1]].(string)

	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

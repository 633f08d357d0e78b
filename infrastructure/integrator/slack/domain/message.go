package slackdomain

type AttachmentField struct {
	Title string `json:"title,omitempty"`
	Value string `json:"value,omitempty"`
	Short bool   `json:"short,omitempty"`
}

type Attachment struct {
	Color      string            `json:"color,omitempty"`
	AuthorName string            `json:"author_name,omitempty"`
	AuthorLink string            `json:"author_link,omitempty"`
	Title      string            `json:"title,omitempty"`
	Text       string            `json:"text,omitempty"`
	Fields     []AttachmentField `json:"fields"`
}

// PostMessageRequest é o corpo enviado ao chat.postMessage
type PostMessageRequest struct {
	Channel     string       `json:"channel"`
	Username    string       `json:"username,omitempty"`
	IconEmoji   string       `json:"icon_emoji,omitempty"`
	Attachments []Attachment `json:"attachments"`
}

type PostMessageResponse struct {
	BaseResponse
	Channel string `json:"channel"`
	TS      string `json:"ts"`
}

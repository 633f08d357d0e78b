package domain

type AttachmentField struct {
	Title string `json:"title,omitempty"`
	Value string `json:"value,omitempty"`
	Short bool   `json:"short,omitempty"`
}

// PostData é o conteúdo do ranking pronto para publicação
type PostData struct {
	AttachmentTitle  string            `json:"attachment_title"`
	AttachmentText   string            `json:"attachment_text"`
	AttachmentFields []AttachmentField `json:"attachment_fields"`
}

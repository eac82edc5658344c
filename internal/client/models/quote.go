package models

// Quote is a server-owned record; the client holds a read-only projection
// and never mutates or deletes one locally. JSON field names follow the
// remote API contract.
type Quote struct {
	ID            int64  `json:"id"`
	Frase         string `json:"frase"`
	Titulo        string `json:"titulo"`
	AutorFrase    string `json:"autor_frase"`
	Categoria     string `json:"categoria"`
	Artist        string `json:"artist,omitempty"`
	CurtidasCount int64  `json:"curtidas_count"`
	UsuarioID     int64  `json:"usuario_id"`
}

// QuoteDraft carries the fields of a quote-creation intent. The like counter
// and the server-assigned id are not part of the draft: the gateway always
// submits curtidas_count as zero.
type QuoteDraft struct {
	Frase      string
	Titulo     string
	AutorFrase string
	Categoria  string
	Artist     string
	UsuarioID  int64
}

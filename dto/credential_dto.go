package dto

// CredentialFields is the front-side field record. Every field is always
// present in the JSON body; a field the extractor could not recover is an
// empty string, never a missing key.
type CredentialFields struct {
	TipoCredencial  string `json:"tipo_credencial"`
	EsINE           bool   `json:"es_ine"`
	Nombre          string `json:"nombre"`
	CURP            string `json:"curp"`
	ClaveElector    string `json:"clave_elector"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	AnioRegistro    string `json:"anio_registro"`
	Seccion         string `json:"seccion"`
	Vigencia        string `json:"vigencia"`
	Sexo            string `json:"sexo"`
	Pais            string `json:"pais"`
	Calle           string `json:"calle"`
	Colonia         string `json:"colonia"`
	Estado          string `json:"estado"`
	Numero          string `json:"numero"`
	CodigoPostal    string `json:"codigo_postal"`
}

// ExtractResponse wraps the field record; the debug members are attached only
// when the caller asked for them.
type ExtractResponse struct {
	CredentialFields
	OCRTexts      []string `json:"_ocr_texts,omitempty"`
	TipoDetectado string   `json:"_tipo_detectado,omitempty"`
}

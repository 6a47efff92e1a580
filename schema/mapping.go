package schema

// NameMapping - case dataset country name to geometry dataset country name
type NameMapping map[string]string

// ISO2Mapping - geometry dataset country name to ISO2 code
type ISO2Mapping map[string]string

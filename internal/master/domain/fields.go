package domain

// Field names one publicly visible channel attribute. The Fields table is
// the single whitelist for both read projections and merge updates.
type Field string

const (
	FieldStatus               Field = "status"
	FieldName                 Field = "name"
	FieldDescription          Field = "description"
	FieldNameNL               Field = "name_nl"
	FieldDescriptionNL        Field = "description_nl"
	FieldWebsocketBaseURL     Field = "websocketBaseURL"
	FieldEventURL             Field = "eventURL"
	FieldEventISODate         Field = "eventISODate"
	FieldVisible              Field = "visible"
	FieldBrightnessMultiplier Field = "brightnessMultiplier"
	FieldBaseScale            Field = "baseScale"
	FieldBaseDistance         Field = "baseDistance"
	FieldNightMode            Field = "nightMode"
	FieldBundledID            Field = "bundledID"
)

// SecretKey is the document key holding a channel's shared secret. It is
// deliberately not a Field.
const SecretKey = "secret"

// Fields lists every whitelisted field in the order projections emit them.
var Fields = []Field{
	FieldStatus,
	FieldName,
	FieldDescription,
	FieldNameNL,
	FieldDescriptionNL,
	FieldWebsocketBaseURL,
	FieldEventURL,
	FieldEventISODate,
	FieldVisible,
	FieldBrightnessMultiplier,
	FieldBaseScale,
	FieldBaseDistance,
	FieldNightMode,
	FieldBundledID,
}

var fieldSet = func() map[string]Field {
	m := make(map[string]Field, len(Fields))
	for _, f := range Fields {
		m[string(f)] = f
	}
	return m
}()

// LookupField returns the Field for a document key, if it is whitelisted.
func LookupField(name string) (Field, bool) {
	f, ok := fieldSet[name]
	return f, ok
}

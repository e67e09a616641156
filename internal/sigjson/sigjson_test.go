package sigjson_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magiscan/magiscan/internal/magic"
	"github.com/magiscan/magiscan/internal/sigjson"
)

func TestRead_ReplaceDefaults(t *testing.T) {
	doc := `{
		"version": "1.0",
		"replace_defaults": true,
		"signatures": [
			{"signature": "FFD8FF", "extension": "jpg", "description": "JPEG Image", "offset": 0, "mime_type": "image/jpeg"}
		]
	}`

	db, skipped, err := sigjson.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	require.Equal(t, 1, db.Size())

	sig := db.All()[0]
	require.Equal(t, []byte{0xFF, 0xD8, 0xFF}, sig.Pattern)
	require.Equal(t, "jpg", sig.Extension)
	require.Equal(t, "image/jpeg", sig.MIMEType)
}

func TestRead_AppendsToDefaults(t *testing.T) {
	doc := `{
		"version": "1.0",
		"signatures": [
			{"signature": "AABBCC", "extension": "xyz", "description": "Custom"}
		]
	}`

	db, skipped, err := sigjson.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	require.Equal(t, magic.DefaultDatabase().Size()+1, db.Size())

	sigs := db.SignaturesFor("xyz")
	require.Len(t, sigs, 1)
	require.Equal(t, 0, sigs[0].Offset)
	require.Equal(t, "application/xyz", sigs[0].MIMEType)
}

func TestRead_SkipsInvalidEntries(t *testing.T) {
	doc := `{
		"version": "1.0",
		"replace_defaults": true,
		"signatures": [
			{"signature": "NOT-HEX", "extension": "bad", "description": "broken"},
			{"signature": "", "extension": "empty", "description": "broken too"},
			{"signature": "25504446", "extension": "pdf", "description": "PDF"}
		]
	}`

	db, skipped, err := sigjson.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, skipped)
	require.Equal(t, 1, db.Size())
	require.Equal(t, "pdf", db.All()[0].Extension)
}

func TestRead_MalformedDocument(t *testing.T) {
	db, _, err := sigjson.Read(strings.NewReader("{not json"))
	require.Error(t, err)
	require.Nil(t, db)
}

func TestRead_EntryDefaults(t *testing.T) {
	doc := `{
		"version": "1.0",
		"replace_defaults": true,
		"signatures": [{"signature": "AA"}]
	}`

	db, skipped, err := sigjson.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 0, skipped)

	sig := db.All()[0]
	require.Equal(t, "unknown", sig.Extension)
	require.Equal(t, magic.UnknownTypeDescription, sig.Description)
	require.Equal(t, "application/unknown", sig.MIMEType)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	db := magic.NewDatabase()
	require.NoError(t, db.Add(magic.Signature{Pattern: []byte("%PDF"), Extension: "pdf", Description: "PDF Document", MIMEType: "application/pdf"}))
	require.NoError(t, db.Add(magic.Signature{Pattern: []byte{0xFF, 0xD8, 0xFF}, Extension: "jpg", Description: "JPEG Image", MIMEType: "image/jpeg"}))
	require.NoError(t, db.Add(magic.Signature{Pattern: []byte("ftyp"), Offset: 4, Extension: "mp4", Description: "MP4 Video", MIMEType: "video/mp4"}))

	var buf bytes.Buffer
	require.NoError(t, sigjson.Write(&buf, db))

	out := buf.String()
	require.Contains(t, out, `"version": "1.0"`)
	require.Contains(t, out, `"total_signatures": 3`)
	require.Contains(t, out, `"25504446"`)
	require.Contains(t, out, `"FFD8FF"`)

	got, skipped, err := sigjson.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	require.Equal(t, db.All(), got.All())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sigs.json")

	db := magic.DefaultDatabase()
	require.NoError(t, sigjson.Save(path, db))

	got, skipped, err := sigjson.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	require.Equal(t, db.All(), got.All())
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := sigjson.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestExampleDocument_Parses(t *testing.T) {
	db, skipped, err := sigjson.Read(strings.NewReader(sigjson.ExampleDocument))
	require.NoError(t, err)
	require.Equal(t, 0, skipped)

	// replace_defaults is false in the example: entries extend the
	// built-in catalog.
	require.Equal(t, magic.DefaultDatabase().Size()+4, db.Size())
}

package magic

// defaultCatalog is the built-in signature set, applied through the same
// Add path used for custom entries. Ordering matters: it is the match
// priority of the detection scan.
//
// Several overlaps are intentional and feed mismatch suppression:
//   - PK\x03\x04 is registered for docx, xlsx, pptx and zip
//   - RIFF is registered for webp, wav and avi; with first-match-wins
//     the detected label for any RIFF container is always the first of
//     the three, so treat it as "RIFF family" rather than a firm type
//   - gif has both 87a and 89a headers, tiff both byte orders
var defaultCatalog = []Signature{
	// Documents
	{Pattern: []byte("%PDF"), Extension: "pdf", Description: "Portable Document Format", MIMEType: "application/pdf"},
	{Pattern: []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, Extension: "doc", Description: "Microsoft Word Document (Old)", MIMEType: "application/msword"},
	{Pattern: []byte("PK\x03\x04"), Extension: "docx", Description: "Microsoft Word Document (Modern)", MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{Pattern: []byte("PK\x03\x04"), Extension: "xlsx", Description: "Microsoft Excel Spreadsheet", MIMEType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{Pattern: []byte("PK\x03\x04"), Extension: "pptx", Description: "Microsoft PowerPoint Presentation", MIMEType: "application/vnd.openxmlformats-officedocument.presentationml.presentation"},

	// Images
	{Pattern: []byte{0xFF, 0xD8, 0xFF}, Extension: "jpg", Description: "JPEG Image", MIMEType: "image/jpeg"},
	{Pattern: []byte{0xFF, 0xD8, 0xFF}, Extension: "jpeg", Description: "JPEG Image", MIMEType: "image/jpeg"},
	{Pattern: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, Extension: "png", Description: "PNG Image", MIMEType: "image/png"},
	{Pattern: []byte("GIF87a"), Extension: "gif", Description: "GIF Image (87a)", MIMEType: "image/gif"},
	{Pattern: []byte("GIF89a"), Extension: "gif", Description: "GIF Image (89a)", MIMEType: "image/gif"},
	{Pattern: []byte("BM"), Extension: "bmp", Description: "Bitmap Image", MIMEType: "image/bmp"},
	{Pattern: []byte{'I', 'I', 0x2A, 0x00}, Extension: "tiff", Description: "TIFF Image (Little Endian)", MIMEType: "image/tiff"},
	{Pattern: []byte{'M', 'M', 0x00, 0x2A}, Extension: "tiff", Description: "TIFF Image (Big Endian)", MIMEType: "image/tiff"},
	{Pattern: []byte("RIFF"), Extension: "webp", Description: "WebP Image", MIMEType: "image/webp"},

	// Archives
	{Pattern: []byte("PK\x03\x04"), Extension: "zip", Description: "ZIP Archive", MIMEType: "application/zip"},
	{Pattern: []byte("PK\x05\x06"), Extension: "zip", Description: "ZIP Archive (Empty)", MIMEType: "application/zip"},
	{Pattern: []byte("PK\x07\x08"), Extension: "zip", Description: "ZIP Archive (Spanned)", MIMEType: "application/zip"},
	{Pattern: []byte("Rar!\x1A\x07"), Extension: "rar", Description: "RAR Archive (v1.5+)", MIMEType: "application/x-rar-compressed"},
	{Pattern: []byte("Rar!\x1A\x07\x00"), Extension: "rar", Description: "RAR Archive (v5.0+)", MIMEType: "application/x-rar-compressed"},
	{Pattern: []byte{0x1F, 0x8B}, Extension: "gz", Description: "GZIP Archive", MIMEType: "application/gzip"},
	{Pattern: []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}, Extension: "7z", Description: "7-Zip Archive", MIMEType: "application/x-7z-compressed"},
	{Pattern: []byte("BZh"), Extension: "bz2", Description: "BZIP2 Archive", MIMEType: "application/x-bzip2"},

	// Executables
	{Pattern: []byte("MZ"), Extension: "exe", Description: "Windows Executable", MIMEType: "application/x-msdownload"},
	{Pattern: []byte{0x7F, 'E', 'L', 'F'}, Extension: "elf", Description: "Linux Executable", MIMEType: "application/x-executable"},
	{Pattern: []byte{0xCA, 0xFE, 0xBA, 0xBE}, Extension: "class", Description: "Java Class File", MIMEType: "application/java-vm"},
	{Pattern: []byte{0xFE, 0xED, 0xFA, 0xCE}, Extension: "macho", Description: "macOS Executable (32-bit)", MIMEType: "application/x-mach-binary"},
	{Pattern: []byte{0xFE, 0xED, 0xFA, 0xCF}, Extension: "macho", Description: "macOS Executable (64-bit)", MIMEType: "application/x-mach-binary"},

	// Audio
	{Pattern: []byte("ID3"), Extension: "mp3", Description: "MP3 Audio", MIMEType: "audio/mpeg"},
	{Pattern: []byte{0xFF, 0xFB}, Extension: "mp3", Description: "MP3 Audio (No ID3)", MIMEType: "audio/mpeg"},
	{Pattern: []byte("RIFF"), Extension: "wav", Description: "WAV Audio", MIMEType: "audio/wav"},
	{Pattern: []byte("fLaC"), Extension: "flac", Description: "FLAC Audio", MIMEType: "audio/flac"},
	{Pattern: []byte("OggS"), Extension: "ogg", Description: "OGG Audio", MIMEType: "audio/ogg"},

	// Video
	{Pattern: []byte("\x00\x00\x00\x18ftypmp42"), Offset: 4, Extension: "mp4", Description: "MP4 Video", MIMEType: "video/mp4"},
	{Pattern: []byte("\x00\x00\x00\x20ftypisom"), Offset: 4, Extension: "mp4", Description: "MP4 Video (isom)", MIMEType: "video/mp4"},
	{Pattern: []byte("RIFF"), Extension: "avi", Description: "AVI Video", MIMEType: "video/x-msvideo"},
	{Pattern: []byte{0x1A, 0x45, 0xDF, 0xA3}, Extension: "mkv", Description: "Matroska Video", MIMEType: "video/x-matroska"},
	{Pattern: []byte("FLV\x01"), Extension: "flv", Description: "Flash Video", MIMEType: "video/x-flv"},

	// Database
	{Pattern: []byte("SQLite format 3\x00"), Extension: "sqlite", Description: "SQLite Database", MIMEType: "application/x-sqlite3"},

	// Other
	{Pattern: []byte("<!DOCTYPE html"), Extension: "html", Description: "HTML Document", MIMEType: "text/html"},
	{Pattern: []byte("<html"), Extension: "html", Description: "HTML Document", MIMEType: "text/html"},
	{Pattern: []byte("<?xml"), Extension: "xml", Description: "XML Document", MIMEType: "text/xml"},
	{Pattern: []byte("{"), Extension: "json", Description: "JSON Document", MIMEType: "application/json"},
	{Pattern: []byte("["), Extension: "json", Description: "JSON Array", MIMEType: "application/json"},
}

// DefaultDatabase builds a database seeded with the built-in catalog.
func DefaultDatabase() *Database {
	db := NewDatabase()
	for _, sig := range defaultCatalog {
		_ = db.Add(sig)
	}
	return db
}

package mime

import "strings"

// Essence sets behind the classification predicates. These are fixed tables
// built once at startup and are safe for unsynchronized concurrent reads.
var (
	archiveEssences = essenceSet(
		"application/zip",
		"application/x-gzip",
		"application/x-rar-compressed",
	)

	// Legacy font essences registered before the font/* tree existed.
	fontEssences = essenceSet(
		"application/font-cff",
		"application/font-off",
		"application/font-sfnt",
		"application/font-ttf",
		"application/font-woff",
		"application/vnd.ms-fontobject",
		"application/vnd.ms-opentype",
	)

	javaScriptEssences = essenceSet(
		"application/ecmascript",
		"application/javascript",
		"application/x-ecmascript",
		"application/x-javascript",
		"text/ecmascript",
		"text/javascript",
		"text/javascript1.0",
		"text/javascript1.1",
		"text/javascript1.2",
		"text/javascript1.3",
		"text/javascript1.4",
		"text/javascript1.5",
		"text/jscript",
		"text/livescript",
		"text/x-ecmascript",
		"text/x-javascript",
	)
)

func essenceSet(es ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(es))
	for _, e := range es {
		s[e] = struct{}{}
	}
	return s
}

// IsArchive reports whether the media type is a ZIP, gzip, or RAR archive.
func (mt *MediaType) IsArchive() bool {
	_, ok := archiveEssences[mt.Essence()]
	return ok
}

// IsAudioVideo reports whether the media type is an audio or video type,
// including the application/ogg container.
func (mt *MediaType) IsAudioVideo() bool {
	return mt.mtype == "audio" || mt.mtype == "video" || mt.Essence() == "application/ogg"
}

// IsFont reports whether the media type is a font, either in the font/* tree
// or one of the legacy application/* font essences.
func (mt *MediaType) IsFont() bool {
	if mt.mtype == "font" {
		return true
	}
	_, ok := fontEssences[mt.Essence()]
	return ok
}

// IsHTML reports whether the media type is text/html.
func (mt *MediaType) IsHTML() bool {
	return mt.Essence() == "text/html"
}

// IsImage reports whether the media type is in the image/* tree.
func (mt *MediaType) IsImage() bool {
	return mt.mtype == "image"
}

// IsJavaScript reports whether the media type is any of the standard or
// legacy JavaScript essences.
func (mt *MediaType) IsJavaScript() bool {
	_, ok := javaScriptEssences[mt.Essence()]
	return ok
}

// IsJSON reports whether the media type is JSON or uses the +json structured
// syntax suffix.
func (mt *MediaType) IsJSON() bool {
	return strings.HasSuffix(mt.subtype, "+json") ||
		mt.Essence() == "text/json" || mt.Essence() == "application/json"
}

// IsXML reports whether the media type is XML or uses the +xml structured
// syntax suffix.
func (mt *MediaType) IsXML() bool {
	return strings.HasSuffix(mt.subtype, "+xml") ||
		mt.Essence() == "text/xml" || mt.Essence() == "application/xml"
}

// IsZipBased reports whether the media type is a ZIP file or uses the +zip
// structured syntax suffix.
func (mt *MediaType) IsZipBased() bool {
	return strings.HasSuffix(mt.subtype, "+zip") || mt.Essence() == "application/zip"
}

// IsScriptable reports whether the media type can carry executable content
// when viewed in a browser: PDF, HTML, or XML.
func (mt *MediaType) IsScriptable() bool {
	return mt.Essence() == "application/pdf" || mt.IsHTML() || mt.IsXML()
}

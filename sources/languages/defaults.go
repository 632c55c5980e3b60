package languages

// defaultTable is used when the external language table cannot be read or
// parsed. Startup never fails on a missing or corrupt table.
func defaultTable() []Entry {
	return []Entry{
		{Command: "/hi", Code: "hi", Name: "Hindi"},
		{Command: "/ta", Code: "ta", Name: "Tamil"},
		{Command: "/te", Code: "te", Name: "Telugu"},
		{Command: "/bn", Code: "bn", Name: "Bengali"},
		{Command: "/mr", Code: "mr", Name: "Marathi"},
		{Command: "/gu", Code: "gu", Name: "Gujarati"},
		{Command: "/kn", Code: "kn", Name: "Kannada"},
		{Command: "/ml", Code: "ml", Name: "Malayalam"},
		{Command: "/pa", Code: "pa", Name: "Punjabi"},
		{Command: "/or", Code: "or", Name: "Odia"},
	}
}

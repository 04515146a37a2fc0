package jsonbox

// CollectionURL addresses a whole box.
func CollectionURL(base, boxID string) string {
	return base + "/" + boxID
}

// RecordURL addresses one record in a box.
func RecordURL(base, boxID, recordID string) string {
	return base + "/" + boxID + "/" + recordID
}

// QueryURL addresses a box listing with an encoded query string.
func QueryURL(base, boxID, query string) string {
	return CollectionURL(base, boxID) + "?" + query
}

package catalog

// NextLesson returns the item immediately after itemID in the course's
// flattened order. It never consults access policy: callers combine
// the result with the access check so a locked "next" lesson can still
// be shown. False when itemID is the last item or unknown.
func (c *Catalog) NextLesson(courseID, itemID string) (Item, bool) {
	items := c.FlattenedItems(courseID)
	for i, item := range items {
		if item.ID == itemID {
			if i+1 < len(items) {
				return items[i+1], true
			}
			return Item{}, false
		}
	}
	return Item{}, false
}

// PreviousLesson returns the item immediately before itemID in the
// course's flattened order. False when itemID is the first item or
// unknown.
func (c *Catalog) PreviousLesson(courseID, itemID string) (Item, bool) {
	items := c.FlattenedItems(courseID)
	for i, item := range items {
		if item.ID == itemID {
			if i > 0 {
				return items[i-1], true
			}
			return Item{}, false
		}
	}
	return Item{}, false
}

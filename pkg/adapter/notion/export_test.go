package notion

// Exported for tests.
var RecordFromPage = recordFromPage

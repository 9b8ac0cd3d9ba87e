package supabase

const (
	// restPodcastsURI is the table endpoint for podcast rows.
	restPodcastsURI = "rest/v1/podcasts"
	// restProfilesURI is the table endpoint for profile rows.
	restProfilesURI = "rest/v1/profiles"
	// graphQLURI is the pg_graphql endpoint.
	graphQLURI = "graphql/v1"
	// generatePodcastURI is the generation function.
	generatePodcastURI = "functions/v1/generate-podcast"
	// generatePodcastFunction names the generation function in errors.
	generatePodcastFunction = "generate-podcast"
)

const (
	// podcastListColumns are the columns read for listings.
	podcastListColumns = "id,user_id,subject,topic,audio_url,duration,created_at,mode,exam_board,level,is_favorite"
	// allColumns reads every column.
	allColumns = "*"
	// preferHeader asks the table endpoint to echo affected rows.
	preferHeader = "Prefer"
	// returnRepresentation makes writes return the affected rows.
	returnRepresentation = "return=representation"
	// uniqueViolationCode is the SQLSTATE of a unique constraint violation.
	uniqueViolationCode = "23505"
)

const (
	// podcastsCacheSize defines the maximum number of podcast rows cached by id.
	// Rows are dropped from the cache whenever they are written.
	podcastsCacheSize = 500
	// maxErrorBodyLength bounds how much of an error response is read.
	maxErrorBodyLength = 64 * 1024
)

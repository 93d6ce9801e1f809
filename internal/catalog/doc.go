// Package catalog talks to the external music catalog API.
//
// The client resolves a catalog song id to its attributes (title, artist,
// album, artwork, preview clips) using two credentials per request: the
// service's signed developer token and the requesting user's linked
// music-user token. Catalog failures are mapped to sentinel errors so the
// playback resolver can translate them into its own taxonomy.
package catalog

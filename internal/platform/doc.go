// Package platform contains OS integration and external tooling glue:
// folder provisioning, the yt-dlp engine adapter (metadata, playlist listing
// and media download via github.com/lrstanley/go-ytdlp), and a native playlist
// source built on github.com/ytget/ytdlp/v2.
package platform

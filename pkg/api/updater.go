package api

import "io"

// Updater receives a firmware image.
//
// Begin is called before the download, the image is streamed through Write and
// Finish commits it once its MD5 matches. Abort drops a partial image. Restart
// boots into the committed image.
type Updater interface {
	io.Writer
	Begin() error
	Finish(md5 string) error
	Abort()
	Restart()
}

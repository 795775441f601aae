package apk

import "github.com/gabriel-vasile/mimetype"

// Looks — похож ли файл на APK по содержимому (не по расширению).
// APK — это zip-контейнер, поэтому поднимаемся по иерархии типов до zip.
func Looks(path string) bool {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for ; mt != nil; mt = mt.Parent() {
		switch mt.String() {
		case "application/vnd.android.package-archive",
			"application/jar",
			"application/zip":
			return true
		}
	}
	return false
}

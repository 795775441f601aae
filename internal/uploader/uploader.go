package uploader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wolfsTail/apkup/internal/apk"
	"github.com/wolfsTail/apkup/internal/human"
	"github.com/wolfsTail/apkup/internal/s3client"
)

// ContentType — APK всегда уезжает с фиксированным типом, без авто-детекта.
const ContentType = "application/vnd.android.package-archive"

// Storage — то немногое, что загрузчику нужно от S3.
type Storage interface {
	PutFile(ctx context.Context, bucket, key, localPath, contentType string) (int64, error)
}

type Uploader struct {
	Store   Storage
	Getenv  func(string) string // подменяется в тестах; nil — os.Getenv
	Out     io.Writer           // nil — os.Stdout
	Verbose bool
}

// Upload — одна попытка загрузки, без ретраев. Ключ по умолчанию — имя файла.
// Любая неудача печатается и сводится к false.
func (u *Uploader) Upload(ctx context.Context, bucket, localPath, key string) bool {
	w := u.out()

	if key == "" {
		key = filepath.Base(localPath)
	}

	fi, err := os.Stat(localPath)
	if err != nil || !fi.Mode().IsRegular() {
		fmt.Fprintf(w, "Ошибка: файл %q не найден.\n", localPath)
		return false
	}

	if u.getenv("AWS_ACCESS_KEY_ID") == "" || u.getenv("AWS_SECRET_ACCESS_KEY") == "" {
		fmt.Fprintln(w, "Внимание: AWS_ACCESS_KEY_ID или AWS_SECRET_ACCESS_KEY не заданы в окружении.")
		fmt.Fprintln(w, "Пробую остальные источники кредов (shared config, IAM-роль)...")
	}

	if !apk.Looks(localPath) {
		fmt.Fprintf(w, "Внимание: %q не похож на APK, загружаю как есть.\n", filepath.Base(localPath))
	}

	fmt.Fprintf(w, "Загружаю %q в бакет %q...\n", localPath, bucket)

	size, err := u.Store.PutFile(ctx, bucket, key, localPath, ContentType)
	var rej *s3client.RejectedError
	switch {
	case err == nil:
		fmt.Fprintf(w, "Готово! %q (%s) загружен в %q.\n", key, human.Bytes(size), bucket)
		return true
	case errors.Is(err, fs.ErrNotExist):
		// файл исчез между проверкой и загрузкой — для пользователя та же пропажа
		fmt.Fprintf(w, "Ошибка: файл %q не найден.\n", localPath)
		return false
	case errors.Is(err, s3client.ErrNoCredentials):
		fmt.Fprintln(w, "Ошибка: учётные данные AWS не найдены.")
		fmt.Fprintln(w, "Проверьте переменные окружения AWS_ACCESS_KEY_ID и AWS_SECRET_ACCESS_KEY.")
		if u.Verbose {
			fmt.Fprintf(w, "Детали: %v\n", err)
		}
		return false
	case errors.As(err, &rej):
		fmt.Fprintf(w, "Ошибка S3: %s\n", rej.Error())
		if u.Verbose {
			fmt.Fprintf(w, "Детали: %v\n", rej.Err)
		}
		return false
	default:
		fmt.Fprintf(w, "Неожиданная ошибка: %v\n", err)
		return false
	}
}

func (u *Uploader) getenv(key string) string {
	if u.Getenv != nil {
		return u.Getenv(key)
	}
	return os.Getenv(key)
}

func (u *Uploader) out() io.Writer {
	if u.Out != nil {
		return u.Out
	}
	return os.Stdout
}

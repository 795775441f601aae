package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/wolfsTail/apkup/internal/config"
	"github.com/wolfsTail/apkup/internal/s3client"
	"github.com/wolfsTail/apkup/internal/uploader"
)

// подменяется в тестах
var newStorage = func(ctx context.Context, cfg *config.Config) (uploader.Storage, error) {
	return s3client.New(ctx, cfg)
}

// точка входа
func Run(argv []string) (int, error) {
	return run(argv, os.Stdout)
}

type args struct {
	Bucket  string
	Path    string
	Key     string
	CfgPath string
	Verbose bool
	Help    bool
}

func run(argv []string, out io.Writer) (int, error) {
	if len(argv) == 0 {
		fmt.Fprint(out, usage())
		return 1, nil
	}

	a, err := parseArgs(argv)
	if err != nil {
		return 1, fmt.Errorf("%s\n\n%s", err.Error(), usage())
	}
	if a.Help {
		fmt.Fprint(out, usage())
		return 0, nil
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return 1, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 24*time.Hour)
	defer cancel()

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return 1, err
	}

	up := &uploader.Uploader{Store: store, Out: out, Verbose: a.Verbose}
	if !up.Upload(ctx, a.Bucket, a.Path, a.Key) {
		return 1, nil
	}
	return 0, nil
}

func parseArgs(argv []string) (args, error) {
	var a args
	pos := make([]string, 0, 2)
	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--key":
			if i+1 >= len(argv) {
				return a, fmt.Errorf("флаг --key требует значение")
			}
			a.Key = argv[i+1]
			i++
		case "--config":
			if i+1 >= len(argv) {
				return a, fmt.Errorf("флаг --config требует путь к файлу")
			}
			a.CfgPath = argv[i+1]
			i++
		case "-v", "--verbose":
			a.Verbose = true
		case "-h", "--help", "help":
			a.Help = true
		default:
			if strings.HasPrefix(argv[i], "-") {
				return a, fmt.Errorf("неизвестный флаг: %q", argv[i])
			}
			pos = append(pos, argv[i])
		}
	}
	if a.Help {
		return a, nil
	}
	if len(pos) != 2 {
		return a, fmt.Errorf("нужно указать бакет и путь к файлу")
	}
	a.Bucket = pos[0]
	a.Path = pos[1]
	return a, nil
}

// справка

func usage() string {
	return `Использование:
  apkup [флаги] <bucket> <filepath>

Описание:
  Загружает один локальный файл (APK) в указанный S3-бакет одним запросом.
  Креды берутся из окружения: AWS_ACCESS_KEY_ID и AWS_SECRET_ACCESS_KEY
  (либо shared config / IAM-роль — стандартная цепочка SDK).

Флаги:
  --key KEY        Ключ объекта в бакете (по умолчанию — имя файла)
  --config PATH    Конфиг -> (по умолчанию ~/.apkup/config.yaml)
  -v, --verbose    Подробные ошибки/детали
  -h, --help       Справка

Примеры:
  apkup my-bucket /tmp/app.apk
  apkup my-bucket /tmp/app.apk --key releases/v2/app.apk
`
}

package commands

import (
	"fmt"

	ranking "github.com/rockzerox/Project-Sekai-Ranking-sub001"
)

const help = `structure %s

usage: %s <command> [arguments]

commands:
  run <config.yml>   start the structure data server
  version            print the version
  help               print this help

environment:
  KV_STORE_URI          redis url of the key-value store
  DATABASE_URI          mongodb uri, used with store.driver: mongo
  MINIO_ROOT_USER       object storage access key for s3:// pointers
  MINIO_ROOT_PASSWORD   object storage secret key for s3:// pointers
`

func HandleHelp(args []string) {
	name := "structure"
	if len(args) > 0 {
		name = args[0]
	}

	fmt.Printf(help, ranking.StringVersion(), name) //nolint
}

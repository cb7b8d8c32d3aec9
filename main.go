// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/stsysd/kirjasto/cli"
)

func main() {
	// Ctrl-C で実行中のコマンドをキャンセル
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// コマンドの実行
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

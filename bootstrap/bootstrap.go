package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/proteomedb/api"
	"github.com/fulldump/proteomedb/collection"
	"github.com/fulldump/proteomedb/configuration"
	"github.com/fulldump/proteomedb/database"
	"github.com/fulldump/proteomedb/service"
)

var VERSION = "dev"

// NewDatabase builds an unloaded database from the configuration.
func NewDatabase(c *configuration.Configuration) *database.Database {

	schema := collection.DefaultSchema()
	schema.Columns = c.Columns

	return database.NewDatabase(&database.Config{
		Flatfile: c.Flatfile,
		Schema:   schema,
	})
}

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	db := NewDatabase(c)

	b := api.Build(service.NewService(db), VERSION)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.RequestId,
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		db.Stop()
		s.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Start()
			if err != nil {
				fmt.Println(err.Error())
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Serve(ln)
			if err != nil && err != http.ErrServerClosed {
				fmt.Println(err.Error())
			}
		}()

		wg.Wait()
	}

	return
}

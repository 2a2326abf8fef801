package resources

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/npillmayer/hyphtext/core"
	"github.com/npillmayer/schuko/gconf"
)

// AppKeyConfig is the configuration key for the application specific
// folder in the user's cache directory.
const AppKeyConfig = "app-key"

const defaultAppKey = "hyphtext"

// DownloadCachedFile will download a url to a local file (usually located in the
// user's cache directory). The file is written only if the download succeeds.
func DownloadCachedFile(ctx context.Context, path string, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot download %s", url)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "cannot download %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return core.Error(core.EMISSING, "cannot download %s: %s", url, resp.Status)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after rename
	if _, err = io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return core.WrapError(err, core.ECONNECTION, "download of %s interrupted", url)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	tracer().Debugf("downloaded %s", url)
	return os.Rename(tmp.Name(), path)
}

// CacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`, plus
// an application specific key, taken as `app-key` from the global configuration.
// Clients may specify a sequence of folder names, which will be appended to
// the base cache path. Non-existing sub-folders will be created as necessary
// (with permissions 755).
func CacheDirPath(subfolders ...string) (string, error) {
	appkey := gconf.GetString(AppKeyConfig)
	tracer().Debugf("config[%s] = %s", AppKeyConfig, appkey)
	if appkey == "" {
		appkey = defaultAppKey
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "no cache directory")
	}
	cachedir = filepath.Join(append([]string{cachedir, appkey}, subfolders...)...)
	tracer().Infof("caching in %s", cachedir)
	if err = os.MkdirAll(cachedir, 0755); err != nil {
		return "", err
	}
	return cachedir, nil
}

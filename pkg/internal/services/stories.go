package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"git.solsynth.dev/hypernet/storyview/pkg/internal/models"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const postCreatedLayout = "2006-01-02T15:04:05"

// BodyRenderer turns a post body into content markup.
type BodyRenderer interface {
	RenderBody(body, jsonMetadata string) (string, error)
}

type BodyRendererFunc func(body, jsonMetadata string) (string, error)

func (f BodyRendererFunc) RenderBody(body, jsonMetadata string) (string, error) {
	return f(body, jsonMetadata)
}

type StoryMount struct {
	Post         models.Post
	State        models.ActionState
	CommentCount int
	Handlers     ActionHandlers
	// Page receives the display mode of the view, a fresh one is used if nil.
	Page *PageStyle
}

// StoryView is the presentation controller of one mounted post. Events are
// applied one at a time in arrival order.
type StoryView struct {
	lock sync.Mutex

	opts         StoryOptions
	post         models.Post
	state        models.ActionState
	commentCount int
	metadata     models.ViewMetadata
	language     string

	content   *html.Node
	bodyNodes []*html.Node
	images    []*html.Node

	gallery *Gallery
	actions *ActionDispatcher

	page      *PageStyle
	release   func()
	unmounted bool
}

func MountStoryView(mount StoryMount, opts StoryOptions) (*StoryView, error) {
	page := mount.Page
	if page == nil {
		page = NewPageStyle()
	}

	release := page.Acquire(opts.DisplayMode)
	mounted := false
	defer func() {
		if !mounted {
			release()
		}
	}()

	var meta models.ViewMetadata
	var err error
	if opts.DegradeMalformed {
		meta = ResolveMetadataDegraded(mount.Post.JsonMetadata, mount.Post.Category, opts.MetadataCacheTTL)
	} else if meta, err = ResolveMetadataCached(mount.Post.JsonMetadata, mount.Post.Category, opts.MetadataCacheTTL); err != nil {
		return nil, fmt.Errorf("unable to mount story view: %w", err)
	}

	markup := mount.Post.Body
	if opts.BodyRenderer != nil {
		if markup, err = opts.BodyRenderer.RenderBody(mount.Post.Body, mount.Post.JsonMetadata); err != nil {
			return nil, fmt.Errorf("unable to render post body: %v", err)
		}
	}

	view := &StoryView{
		opts:         opts,
		post:         mount.Post,
		state:        mount.State,
		commentCount: mount.CommentCount,
		metadata:     meta,
		page:         page,
		release:      release,
		actions:      NewActionDispatcher(mount.Post, mount.Handlers),
		gallery:      NewGallery(meta.Images, opts.StrictGallery),
	}

	if err := view.buildContent(markup); err != nil {
		return nil, fmt.Errorf("unable to parse post content: %v", err)
	}
	view.images = CollectImageElements(view.content)
	if len(view.images) != len(meta.Images) {
		log.Debug().
			Int("rendered", len(view.images)).
			Int("metadata", len(meta.Images)).
			Uint("post", mount.Post.ID).
			Msg("Rendered images do not line up with metadata images...")
	}

	if opts.DetectLanguage {
		view.language = DetectLanguage(mount.Post.Title + "\n" + textContent(view.bodyNodes))
	}

	mounted = true
	return view, nil
}

func (v *StoryView) buildContent(markup string) error {
	v.content = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	if video := v.videoFrame(); video != nil {
		element := &html.Node{
			Type:     html.ElementNode,
			Data:     "video",
			DataAtom: atom.Video,
			Attr: []html.Attribute{
				{Key: "controls"},
				{Key: "src", Val: video.Src},
				{Key: "poster", Val: video.Poster},
			},
		}
		element.AppendChild(&html.Node{
			Type:     html.ElementNode,
			Data:     "track",
			DataAtom: atom.Track,
			Attr:     []html.Attribute{{Key: "kind", Val: "captions"}},
		})
		v.content.AppendChild(element)
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), v.content)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		v.content.AppendChild(node)
	}
	v.bodyNodes = nodes
	return nil
}

func (v *StoryView) mediaURL(hash string) string {
	return strings.TrimSuffix(v.opts.Gateway, "/") + "/" + hash
}

func (v *StoryView) videoFrame() *models.VideoFrame {
	if v.metadata.Video == nil {
		return nil
	}
	return &models.VideoFrame{
		Src:    v.mediaURL(v.metadata.Video.VideoHash),
		Poster: v.mediaURL(v.metadata.Video.SnapHash),
	}
}

func (v *StoryView) Metadata() models.ViewMetadata {
	return v.metadata
}

func (v *StoryView) Content() *html.Node {
	return v.content
}

func (v *StoryView) Images() []*html.Node {
	return v.images
}

func (v *StoryView) GalleryState() models.GalleryState {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.gallery.State()
}

// HandleContentClick opens the gallery when target is one of the content images.
// Rendered images without a metadata counterpart are ignored.
func (v *StoryView) HandleContentClick(target *html.Node) bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.unmounted {
		return false
	}

	index, ok := RouteContentClick(target, v.images)
	if !ok || index >= v.gallery.Len() {
		return false
	}
	v.gallery.OpenAt(index)
	return true
}

func (v *StoryView) HandleContentClickPath(path []int) bool {
	target, ok := ResolveElementPath(v.content, path)
	if !ok {
		return false
	}
	return v.HandleContentClick(target)
}

func (v *StoryView) NextImage() {
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.unmounted {
		v.gallery.Next()
	}
}

func (v *StoryView) PrevImage() {
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.unmounted {
		v.gallery.Prev()
	}
}

func (v *StoryView) CloseGallery() {
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.unmounted {
		v.gallery.Close()
	}
}

func (v *StoryView) HandleMenuSelect(key string) *models.Intent {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.unmounted {
		return nil
	}
	return v.actions.Dispatch(key)
}

func (v *StoryView) HandleFooterAction(key string) *models.Intent {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.unmounted {
		return nil
	}
	return v.actions.DispatchFooter(key)
}

// UpdateState replaces the externally owned action flags before a re-render.
func (v *StoryView) UpdateState(state models.ActionState) {
	v.lock.Lock()
	defer v.lock.Unlock()
	if !v.unmounted {
		v.state = state
	}
}

// Unmount releases the display mode of the view. Events arriving afterwards
// are dropped. It is safe to call twice.
func (v *StoryView) Unmount() {
	v.lock.Lock()
	defer v.lock.Unlock()
	if v.unmounted {
		return
	}
	v.unmounted = true
	v.release()
}

func (v *StoryView) Unmounted() bool {
	v.lock.Lock()
	defer v.lock.Unlock()
	return v.unmounted
}

func (v *StoryView) Render(now time.Time) models.StoryFrame {
	v.lock.Lock()
	defer v.lock.Unlock()

	return models.StoryFrame{
		Title:         v.post.Title,
		CommentsTitle: fmt.Sprintf("%d comments", v.commentCount),
		CommentsLink:  "#comments",
		Language:      v.language,
		Author: models.AuthorFrame{
			Name:            v.post.Author,
			Link:            "/@" + v.post.Author,
			Reputation:      FormatReputation(v.post.AuthorReputation),
			ReputationTitle: "Reputation score",
		},
		Created:  renderCreated(v.post.Created, now),
		Menu:     BuildMenu(v.post.Author, v.state),
		Video:    v.videoFrame(),
		Body:     renderNodes(v.bodyNodes),
		Lightbox: v.gallery.Frame(),
		Tags:     lo.Ternary(v.metadata.Tags == nil, []string{}, v.metadata.Tags),
		Footer: models.FooterFrame{
			PostID:       v.post.ID,
			PendingLike:  v.state.PendingLike,
			CommentCount: v.commentCount,
		},
		BodyClasses: v.page.Classes(),
	}
}

// ParsePostCreated reads a created timestamp as UTC, with or without a zone marker.
func ParsePostCreated(created string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation(postCreatedLayout, created, time.UTC)
}

func renderCreated(created string, now time.Time) models.CreatedFrame {
	t, err := ParsePostCreated(created)
	if err != nil {
		log.Warn().Err(err).Str("created", created).Msg("Unable to parse post created time...")
		return models.CreatedFrame{}
	}
	return models.CreatedFrame{
		Timestamp: &t,
		Relative:  humanize.RelTime(t, now, "ago", "from now"),
		Date:      t.Format("January 2, 2006"),
		Time:      t.Format("3:04 PM"),
	}
}

func renderNodes(nodes []*html.Node) string {
	var buf strings.Builder
	for _, node := range nodes {
		_ = html.Render(&buf, node)
	}
	return buf.String()
}

func textContent(nodes []*html.Node) string {
	var buf strings.Builder
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			buf.WriteString(node.Data)
			buf.WriteByte(' ')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range nodes {
		walk(node)
	}
	return buf.String()
}

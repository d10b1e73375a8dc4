package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blogly/config"
	"blogly/models"
)

type RouterTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:routes_test?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	if err := config.Migrate(db); err != nil {
		suite.T().Fatal("Failed to migrate test database:", err)
	}
	suite.db = db

	router := gin.New()
	router.SetFuncMap(TemplateFuncs)
	router.LoadHTMLGlob("../templates/*.html")
	SetupRoutes(router, db)
	suite.router = router
}

func (suite *RouterTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM posts_tags")
	suite.db.Exec("DELETE FROM posts")
	suite.db.Exec("DELETE FROM tags")
	suite.db.Exec("DELETE FROM users")
}

func (suite *RouterTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) createUser(first, last string) models.User {
	w := suite.postForm("/users/new", url.Values{
		"first_name": {first},
		"last_name":  {last},
	})
	suite.Equal(http.StatusFound, w.Code)

	var user models.User
	err := suite.db.Where("first_name = ? AND last_name = ?", first, last).First(&user).Error
	suite.NoError(err)
	return user
}

func (suite *RouterTestSuite) createPost(userID uint, title, content string, tags ...string) models.Post {
	form := url.Values{
		"title":   {title},
		"content": {content},
	}
	for _, tag := range tags {
		form.Add("tag", tag)
	}
	w := suite.postForm(fmt.Sprintf("/users/%d/posts/new", userID), form)
	suite.Equal(http.StatusFound, w.Code)

	var post models.Post
	err := suite.db.Where("title = ? AND user_id = ?", title, userID).
		Order("id desc").First(&post).Error
	suite.NoError(err)
	return post
}

func (suite *RouterTestSuite) createTag(name string) models.Tag {
	w := suite.postForm("/tags/new", url.Values{"name": {name}})
	suite.Equal(http.StatusFound, w.Code)

	var tag models.Tag
	err := suite.db.Where("name = ?", name).First(&tag).Error
	suite.NoError(err)
	return tag
}

func (suite *RouterTestSuite) TestHomeRedirectsToUsers() {
	w := suite.get("/")

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/users", w.Header().Get("Location"))
}

func (suite *RouterTestSuite) TestUsersIndexOrderedByLastThenFirstName() {
	vera := suite.createUser("Vera", "Nouaime")
	john := suite.createUser("John", "Smith")
	susie := suite.createUser("Susie", "Sal")

	w := suite.get("/users")
	html := w.Body.String()

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(html, "<h1>Users:</h1>")
	suite.Contains(html, fmt.Sprintf(`<li><a href="/users/%d">Vera Nouaime</a></li>`, vera.ID))
	suite.Contains(html, fmt.Sprintf(`<li><a href="/users/%d">John Smith</a></li>`, john.ID))
	suite.Contains(html, fmt.Sprintf(`<li><a href="/users/%d">Susie Sal</a></li>`, susie.ID))

	// Ordered by (last_name, first_name): Nouaime, Sal, Smith.
	suite.Less(strings.Index(html, "Vera Nouaime"), strings.Index(html, "Susie Sal"))
	suite.Less(strings.Index(html, "Susie Sal"), strings.Index(html, "John Smith"))
}

func (suite *RouterTestSuite) TestUserPageShowsImageAndButtons() {
	user := suite.createUser("Vera", "Nouaime")

	w := suite.get(fmt.Sprintf("/users/%d", user.ID))
	html := w.Body.String()

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(models.DefaultImageURL, user.ImageURL)
	suite.Contains(html, fmt.Sprintf(`<img class="profile_pic" src="%s" alt="Vera Nouaime">`, user.ImageURL))
	suite.Contains(html, `<button type="submit" class="edit_button">Edit</button>`)
	suite.Contains(html, `<button type="submit" class="delete_button">Delete</button>`)
}

func (suite *RouterTestSuite) TestCreateUserDefaultsImage() {
	user := suite.createUser("Leo", "Star")
	suite.Equal(models.DefaultImageURL, user.ImageURL)
}

func (suite *RouterTestSuite) TestCreateUserRequiresNames() {
	w := suite.postForm("/users/new", url.Values{"first_name": {"Leo"}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "field_error")

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *RouterTestSuite) TestBlankEditLeavesUserUnchanged() {
	user := suite.createUser("Vera", "Nouaime")

	w := suite.postForm(fmt.Sprintf("/users/%d/edit", user.ID), url.Values{
		"first_name": {""},
		"last_name":  {""},
		"image_url":  {""},
	})
	suite.Equal(http.StatusFound, w.Code)

	var after models.User
	suite.NoError(suite.db.First(&after, user.ID).Error)
	suite.Equal("Vera", after.FirstName)
	suite.Equal("Nouaime", after.LastName)
	suite.Equal(user.ImageURL, after.ImageURL)
}

func (suite *RouterTestSuite) TestPartialEditOverwritesOnlySubmittedFields() {
	user := suite.createUser("Vera", "Nouaime")

	w := suite.postForm(fmt.Sprintf("/users/%d/edit", user.ID), url.Values{
		"first_name": {"Veronica"},
	})
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal(fmt.Sprintf("/users/%d", user.ID), w.Header().Get("Location"))

	var after models.User
	suite.NoError(suite.db.First(&after, user.ID).Error)
	suite.Equal("Veronica", after.FirstName)
	suite.Equal("Nouaime", after.LastName)
}

func (suite *RouterTestSuite) TestDeleteUserCascadesToPosts() {
	user := suite.createUser("Vera", "Nouaime")
	tag := suite.createTag("go")
	post := suite.createPost(user.ID, "Hello", "World", tag.Name)

	w := suite.postForm(fmt.Sprintf("/users/%d/delete", user.ID), url.Values{})
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/users", w.Header().Get("Location"))

	var users, posts, joins int64
	suite.db.Model(&models.User{}).Count(&users)
	suite.db.Model(&models.Post{}).Count(&posts)
	suite.db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&joins)
	suite.Equal(int64(0), users)
	suite.Equal(int64(0), posts)
	suite.Equal(int64(0), joins)
}

func (suite *RouterTestSuite) TestCreateAndShowPost() {
	user := suite.createUser("Vera", "Nouaime")
	post := suite.createPost(user.ID, "Hello", "World")

	w := suite.get(fmt.Sprintf("/posts/%d", post.ID))
	html := w.Body.String()

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(html, "<h1>Hello</h1>")
	suite.Contains(html, "World")
	suite.Contains(html, "Vera Nouaime")
	suite.False(post.CreatedAt.IsZero())
}

func (suite *RouterTestSuite) TestPostEditKeepsBlankFieldsAndReplacesTags() {
	user := suite.createUser("Vera", "Nouaime")
	t1 := suite.createTag("t1")
	t2 := suite.createTag("t2")
	t3 := suite.createTag("t3")
	post := suite.createPost(user.ID, "Hello", "World", t3.Name)

	w := suite.postForm(fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{
		"title":   {""},
		"content": {""},
		"tag":     {t1.Name, t2.Name},
	})
	suite.Equal(http.StatusFound, w.Code)

	var after models.Post
	suite.NoError(suite.db.Preload("Tags").First(&after, post.ID).Error)
	suite.Equal("Hello", after.Title)
	suite.Equal("World", after.Content)

	names := []string{}
	for _, tag := range after.Tags {
		names = append(names, tag.Name)
	}
	suite.ElementsMatch([]string{"t1", "t2"}, names)
}

func (suite *RouterTestSuite) TestPostEditWithNoTagsClearsSet() {
	user := suite.createUser("Vera", "Nouaime")
	tag := suite.createTag("t1")
	post := suite.createPost(user.ID, "Hello", "World", tag.Name)

	w := suite.postForm(fmt.Sprintf("/posts/%d/edit", post.ID), url.Values{
		"title": {"Hello again"},
	})
	suite.Equal(http.StatusFound, w.Code)

	var after models.Post
	suite.NoError(suite.db.Preload("Tags").First(&after, post.ID).Error)
	suite.Equal("Hello again", after.Title)
	suite.Empty(after.Tags)
}

func (suite *RouterTestSuite) TestUnknownTagNamesAreIgnored() {
	user := suite.createUser("Vera", "Nouaime")
	tag := suite.createTag("known")
	post := suite.createPost(user.ID, "Hello", "World", tag.Name, "no-such-tag")

	var after models.Post
	suite.NoError(suite.db.Preload("Tags").First(&after, post.ID).Error)
	suite.Len(after.Tags, 1)
	suite.Equal("known", after.Tags[0].Name)

	var count int64
	suite.db.Model(&models.Tag{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *RouterTestSuite) TestDeletePostRedirectsToOwner() {
	user := suite.createUser("Vera", "Nouaime")
	post := suite.createPost(user.ID, "Hello", "World")

	w := suite.postForm(fmt.Sprintf("/posts/%d/delete", post.ID), url.Values{})
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal(fmt.Sprintf("/users/%d", user.ID), w.Header().Get("Location"))

	var count int64
	suite.db.Model(&models.Post{}).Count(&count)
	suite.Equal(int64(0), count)
}

func (suite *RouterTestSuite) TestCreateTagRedirectsToTagPage() {
	w := suite.postForm("/tags/new", url.Values{"name": {"New"}})
	suite.Equal(http.StatusFound, w.Code)

	var tag models.Tag
	suite.NoError(suite.db.Where("name = ?", "New").First(&tag).Error)
	suite.Equal(fmt.Sprintf("/tags/%d", tag.ID), w.Header().Get("Location"))
}

func (suite *RouterTestSuite) TestTagPageListsAssociatedPosts() {
	user := suite.createUser("Vera", "Nouaime")
	tag := suite.createTag("New")
	post := suite.createPost(user.ID, "Hello", "World", tag.Name)

	w := suite.get(fmt.Sprintf("/tags/%d", tag.ID))
	html := w.Body.String()

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(html, "<h1>New</h1>")
	suite.Contains(html, fmt.Sprintf(`<li><a href="/posts/%d">Hello</a></li>`, post.ID))
}

func (suite *RouterTestSuite) TestDuplicateTagRejected() {
	suite.createTag("go")

	w := suite.postForm("/tags/new", url.Values{"name": {"go"}})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "tag already exists")

	var count int64
	suite.db.Model(&models.Tag{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *RouterTestSuite) TestRenameTag() {
	tag := suite.createTag("golang")

	w := suite.postForm(fmt.Sprintf("/tags/%d/edit", tag.ID), url.Values{"name": {"go"}})
	suite.Equal(http.StatusFound, w.Code)

	var after models.Tag
	suite.NoError(suite.db.First(&after, tag.ID).Error)
	suite.Equal("go", after.Name)
}

func (suite *RouterTestSuite) TestDeleteTagRemovesJoinRows() {
	user := suite.createUser("Vera", "Nouaime")
	tag := suite.createTag("doomed")
	post := suite.createPost(user.ID, "Hello", "World", tag.Name)

	w := suite.postForm(fmt.Sprintf("/tags/%d/delete", tag.ID), url.Values{})
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/tags", w.Header().Get("Location"))

	var after models.Post
	suite.NoError(suite.db.Preload("Tags").First(&after, post.ID).Error)
	suite.Empty(after.Tags)

	var joins int64
	suite.db.Model(&models.PostTag{}).Count(&joins)
	suite.Equal(int64(0), joins)
}

func (suite *RouterTestSuite) TestNotFoundOnEveryIDRoute() {
	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/users/999"},
		{"GET", "/users/999/edit"},
		{"POST", "/users/999/edit"},
		{"POST", "/users/999/delete"},
		{"GET", "/users/999/posts/new"},
		{"POST", "/users/999/posts/new"},
		{"GET", "/posts/999"},
		{"GET", "/posts/999/edit"},
		{"POST", "/posts/999/edit"},
		{"POST", "/posts/999/delete"},
		{"GET", "/tags/999"},
		{"GET", "/tags/999/edit"},
		{"POST", "/tags/999/edit"},
		{"POST", "/tags/999/delete"},
	}

	for _, route := range paths {
		var w *httptest.ResponseRecorder
		if route.method == "GET" {
			w = suite.get(route.path)
		} else {
			w = suite.postForm(route.path, url.Values{})
		}
		suite.Equal(http.StatusNotFound, w.Code, "%s %s", route.method, route.path)
	}
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

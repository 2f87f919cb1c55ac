package site

// pageTemplate is the Go html/template for each generated page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="site-title"><a href="{{.BasePath}}index.html">{{.SiteName}}</a></h2>
      <input type="text" id="search-input" placeholder="Search topics..." autocomplete="off">
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.TreeHTML}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <div class="top-bar-spacer"></div>
      <div class="account-nav" id="account-nav"></div>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <article class="page-content">
      {{.Content}}
    </article>
    {{if .Topic}}
    <section class="quiz-widget" id="quiz-widget" data-topic="{{.Topic}}">
      <h2>Test yourself</h2>
      <p class="quiz-intro">Answer a few questions generated from this page.</p>
      <button class="btn btn-primary" id="quiz-start">Start quiz</button>
      <div id="quiz-body"></div>
    </section>
    {{end}}
    {{if .PagePath}}
    <section class="feedback-widget" id="feedback-widget" data-page="{{.PagePath}}">
      <span class="feedback-question">Was this page helpful?</span>
      <button class="btn btn-small" id="feedback-yes">Yes</button>
      <button class="btn btn-small" id="feedback-no">No</button>
      <div id="feedback-followup"></div>
    </section>
    {{end}}
  </main>
  <script src="{{.BasePath}}app.js"></script>
</body>
</html>`

// loginPageContent is the body of the /login page. app.js handles the form.
const loginPageContent = `<h1>Sign in</h1>
<div class="error-banner" id="error-banner" hidden></div>
<form class="account-form" id="login-form">
  <label for="login-identity">Username or email</label>
  <input type="text" id="login-identity" name="identity" autocomplete="username" required>
  <label for="login-password">Password</label>
  <input type="password" id="login-password" name="password" autocomplete="current-password" required>
  <button type="submit" class="btn btn-primary">Sign in</button>
</form>
<p class="account-alt">No account yet? <a href="/register">Create one</a>.</p>`

// registerPageContent is the body of the /register page.
const registerPageContent = `<h1>Create account</h1>
<div class="error-banner" id="error-banner" hidden></div>
<form class="account-form" id="register-form">
  <label for="register-name">Name</label>
  <input type="text" id="register-name" name="name" autocomplete="name">
  <label for="register-username">Username</label>
  <input type="text" id="register-username" name="username" autocomplete="username" required>
  <label for="register-email">Email</label>
  <input type="email" id="register-email" name="email" autocomplete="email" required>
  <label for="register-password">Password</label>
  <input type="password" id="register-password" name="password" autocomplete="new-password" minlength="8" required>
  <button type="submit" class="btn btn-primary">Create account</button>
</form>
<p class="account-alt">Already registered? <a href="/login">Sign in</a>.</p>`

// profilePageContent is the body of the /profile page. Signed-out visitors
// are redirected to /login by app.js.
const profilePageContent = `<h1>Your profile</h1>
<div class="error-banner" id="error-banner" hidden></div>
<div class="success-banner" id="success-banner" hidden></div>
<form class="account-form" id="profile-form">
  <label for="profile-name">Name</label>
  <input type="text" id="profile-name" name="name">
  <label for="profile-username">Username</label>
  <input type="text" id="profile-username" name="username" required>
  <label for="profile-email">Email</label>
  <input type="email" id="profile-email" name="email" required>
  <button type="submit" class="btn btn-primary">Save changes</button>
  <button type="button" class="btn" id="logout-button">Sign out</button>
</form>`

// cssContent is the full CSS for the generated site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --code-border: #e9ecef;
  --link: #228be6;
  --good: #2f9e44;
  --bad: #e03131;
  --sidebar-width: 280px;
  --content-max-width: 860px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-hover: #89b4fa;
  --accent-light: #1a1b2e;
  --code-bg: #1f2030;
  --code-border: #292e42;
  --link: #7aa2f7;
  --good: #69db7c;
  --bad: #ff8787;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.65;
}

a { color: var(--link); text-decoration: none; }
a:hover { text-decoration: underline; }

/* ============ Sidebar ============ */
.sidebar {
  position: fixed;
  top: 0; left: 0; bottom: 0;
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  overflow-y: auto;
  z-index: 20;
}

.sidebar-header {
  padding: 16px;
  border-bottom: 1px solid var(--border);
}

.site-title { margin: 0 0 12px; font-size: 1.1rem; }
.site-title a { color: var(--text); }

#search-input {
  width: 100%;
  padding: 8px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
  font-size: 0.9rem;
}

.sidebar-tree { padding: 8px 4px 24px; font-size: 0.9rem; }
.sidebar-tree ul { list-style: none; margin: 0; padding-left: 14px; }
.sidebar-tree > ul { padding-left: 8px; }
.sidebar-tree li { margin: 1px 0; }
.sidebar-tree li.hidden { display: none; }
.sidebar-tree .page a {
  display: block;
  padding: 4px 8px;
  border-radius: 4px;
  color: var(--text-secondary);
}
.sidebar-tree .page a:hover { background: var(--accent-light); text-decoration: none; }
.sidebar-tree .page a.active { background: var(--accent-light); color: var(--accent); font-weight: 600; }
.sidebar-tree .dir > .dir-toggle {
  display: block;
  padding: 4px 8px;
  font-weight: 600;
  cursor: pointer;
  color: var(--text);
}
.sidebar-tree .dir > ul { display: none; }
.sidebar-tree .dir.expanded > ul { display: block; }

.sidebar-overlay {
  display: none;
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.4);
  z-index: 15;
}
.sidebar-overlay.visible { display: block; }

/* ============ Content ============ */
.content {
  margin-left: var(--sidebar-width);
  padding: 0 32px 64px;
}

.top-bar {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 12px 0;
  border-bottom: 1px solid var(--border);
  margin-bottom: 24px;
}
.top-bar-spacer { flex: 1; }

.menu-toggle, .theme-toggle {
  background: none;
  border: none;
  color: var(--text);
  cursor: pointer;
  padding: 6px;
  border-radius: 6px;
}
.menu-toggle:hover, .theme-toggle:hover { background: var(--bg-secondary); }
.menu-toggle { display: none; }

[data-theme="dark"] .sun-icon { display: none; }
[data-theme="light"] .moon-icon, :root:not([data-theme]) .moon-icon { display: none; }

.account-nav { display: flex; align-items: center; gap: 12px; font-size: 0.9rem; }
.account-nav .account-name { color: var(--text-secondary); }

.page-content {
  max-width: var(--content-max-width);
}

.page-content h1 { font-size: 1.9rem; line-height: 1.3; }
.page-content h2 { margin-top: 2em; border-bottom: 1px solid var(--border); padding-bottom: 6px; }

.page-content code {
  background: var(--code-bg);
  border: 1px solid var(--code-border);
  border-radius: 4px;
  padding: 1px 5px;
  font-size: 0.88em;
}

.page-content pre {
  background: var(--code-bg);
  border: 1px solid var(--code-border);
  border-radius: 8px;
  padding: 14px;
  overflow-x: auto;
}
.page-content pre code { background: none; border: none; padding: 0; }

.page-content table { border-collapse: collapse; width: 100%; }
.page-content th, .page-content td {
  border: 1px solid var(--border);
  padding: 8px 12px;
  text-align: left;
}
.page-content th { background: var(--bg-secondary); }

.page-content blockquote {
  margin: 0;
  padding: 4px 16px;
  border-left: 3px solid var(--accent);
  background: var(--bg-secondary);
  color: var(--text-secondary);
}

.index-intro { color: var(--text-secondary); max-width: 640px; }

.topic-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
  gap: 16px;
  max-width: var(--content-max-width);
}
.topic-card {
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 16px;
  background: var(--bg-secondary);
  box-shadow: var(--shadow);
}
.topic-card h2 { margin: 0 0 8px; font-size: 1.05rem; border: none; padding: 0; }
.topic-card ul { margin: 0; padding-left: 18px; font-size: 0.9rem; }

/* ============ Buttons and forms ============ */
.btn {
  border: 1px solid var(--border);
  background: var(--bg-secondary);
  color: var(--text);
  border-radius: 6px;
  padding: 8px 16px;
  font-size: 0.9rem;
  cursor: pointer;
}
.btn:hover { background: var(--accent-light); }
.btn-primary {
  background: var(--accent);
  border-color: var(--accent);
  color: #fff;
}
.btn-primary:hover { background: var(--accent-hover); }
.btn-small { padding: 4px 12px; }

.account-form {
  max-width: 380px;
  display: flex;
  flex-direction: column;
  gap: 6px;
}
.account-form label { font-size: 0.85rem; color: var(--text-secondary); margin-top: 10px; }
.account-form input {
  padding: 9px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
}
.account-form .btn { margin-top: 14px; }
.account-alt { font-size: 0.9rem; color: var(--text-secondary); }

.error-banner {
  max-width: 380px;
  background: rgba(224, 49, 49, 0.1);
  border: 1px solid var(--bad);
  color: var(--bad);
  border-radius: 6px;
  padding: 10px 14px;
  margin: 12px 0;
}
.success-banner {
  max-width: 380px;
  background: rgba(47, 158, 68, 0.1);
  border: 1px solid var(--good);
  color: var(--good);
  border-radius: 6px;
  padding: 10px 14px;
  margin: 12px 0;
}

/* ============ Quiz widget ============ */
.quiz-widget {
  max-width: var(--content-max-width);
  margin-top: 48px;
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 20px 24px;
  background: var(--bg-secondary);
}
.quiz-widget h2 { margin-top: 0; border: none; padding: 0; }
.quiz-intro { color: var(--text-secondary); }

.quiz-question { margin: 20px 0; }
.quiz-question-text { font-weight: 600; margin-bottom: 8px; }
.quiz-option { display: block; margin: 4px 0; cursor: pointer; }
.quiz-option input { margin-right: 8px; }

.quiz-result { margin-top: 16px; font-size: 1.05rem; font-weight: 600; }
.quiz-option.correct-answer { color: var(--good); font-weight: 600; }
.quiz-option.wrong-answer { color: var(--bad); }
.quiz-error { color: var(--bad); margin-top: 12px; }

/* ============ Feedback widget ============ */
.feedback-widget {
  max-width: var(--content-max-width);
  margin-top: 24px;
  display: flex;
  align-items: center;
  flex-wrap: wrap;
  gap: 10px;
  border-top: 1px solid var(--border);
  padding-top: 16px;
  color: var(--text-secondary);
  font-size: 0.95rem;
}
.feedback-widget .feedback-thanks { color: var(--good); }
#feedback-followup { width: 100%; }
#feedback-followup textarea {
  width: 100%;
  max-width: 480px;
  min-height: 70px;
  padding: 8px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
}

/* ============ Responsive ============ */
@media (max-width: 900px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.2s; }
  .sidebar.open { transform: translateX(0); }
  .content { margin-left: 0; padding: 0 16px 48px; }
  .menu-toggle { display: block; }
}
`

// jsContent drives the theme, sidebar, search, account state and the quiz
// and feedback widgets on every generated page.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  var THEME_KEY = "interviewhelper:theme";
  var TOKEN_KEY = "interviewhelper:accessToken";
  var USER_KEY = "interviewhelper:user";
  var REDIRECT_KEY = "interviewhelper:redirectAfterLogin";

  // ===== Storage helpers =====
  function storageGet(key) {
    try { return localStorage.getItem(key); } catch (e) { return null; }
  }
  function storageSet(key, value) {
    try { localStorage.setItem(key, value); } catch (e) {}
  }
  function storageRemove(key) {
    try { localStorage.removeItem(key); } catch (e) {}
  }

  function getToken() { return storageGet(TOKEN_KEY); }

  function getUser() {
    var raw = storageGet(USER_KEY);
    if (!raw) return null;
    try { return JSON.parse(raw); } catch (e) { return null; }
  }

  function storeSession(user, token) {
    storageSet(TOKEN_KEY, token);
    storageSet(USER_KEY, JSON.stringify(user));
  }

  function clearSession() {
    storageRemove(TOKEN_KEY);
    storageRemove(USER_KEY);
  }

  function redirectToLogin() {
    storageSet(REDIRECT_KEY, window.location.pathname);
    window.location.href = "/login";
  }

  // ===== API helper =====
  // Resolves with parsed JSON, rejects with the server's error message
  // verbatim. A 401 on an authenticated call clears the session.
  function api(method, path, body, authed) {
    var headers = { "Content-Type": "application/json" };
    if (authed) {
      var token = getToken();
      if (token) headers["Authorization"] = "Bearer " + token;
    }
    return fetch(path, {
      method: method,
      headers: headers,
      body: body === undefined ? undefined : JSON.stringify(body)
    }).then(function(res) {
      if (res.status === 401 && authed) {
        clearSession();
      }
      return res.json().catch(function() { return {}; }).then(function(data) {
        if (!res.ok) {
          var err = new Error(data.error || ("request failed (" + res.status + ")"));
          err.status = res.status;
          throw err;
        }
        return data;
      });
    }, function() {
      // The request never reached the server.
      throw new Error("Something went wrong. Please try again.");
    });
  }

  function showBanner(id, message) {
    var banner = document.getElementById(id);
    if (!banner) return;
    banner.textContent = message;
    banner.hidden = false;
  }

  function hideBanner(id) {
    var banner = document.getElementById(id);
    if (banner) banner.hidden = true;
  }

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    storageSet(THEME_KEY, theme);
  }

  var storedTheme = storageGet(THEME_KEY);
  if (storedTheme) {
    setTheme(storedTheme);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  // ===== Sidebar toggle (mobile) =====
  var menuToggle = document.getElementById("menu-toggle");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  function toggleSidebar() {
    sidebar.classList.toggle("open");
    overlay.classList.toggle("visible");
  }

  if (menuToggle) menuToggle.addEventListener("click", toggleSidebar);
  if (overlay) overlay.addEventListener("click", toggleSidebar);

  // ===== Directory tree toggle =====
  document.querySelectorAll(".dir-toggle").forEach(function(toggle) {
    toggle.addEventListener("click", function() {
      this.parentElement.classList.toggle("expanded");
    });
  });

  // ===== Account nav =====
  var accountNav = document.getElementById("account-nav");

  function renderAccountNav() {
    if (!accountNav) return;
    var user = getUser();
    if (user && getToken()) {
      accountNav.innerHTML =
        '<span class="account-name"></span> <a href="/profile">Profile</a>';
      accountNav.querySelector(".account-name").textContent = user.username || user.name || "";
    } else {
      accountNav.innerHTML = '<a href="/login">Sign in</a> <a href="/register">Register</a>';
    }
  }

  renderAccountNav();

  // Refresh the stored user so a stale or revoked token drops out quickly.
  if (getToken()) {
    api("GET", "/auth/me", undefined, true)
      .then(function(user) {
        storageSet(USER_KEY, JSON.stringify(user));
        renderAccountNav();
      })
      .catch(function() { renderAccountNav(); });
  }

  // ===== Sidebar search filter =====
  var searchInput = document.getElementById("search-input");
  var sidebarTree = document.getElementById("sidebar-tree");
  var searchIndex = null;

  (function loadSearchIndex() {
    var link = document.querySelector("link[rel=stylesheet]");
    var base = link ? link.getAttribute("href").replace("style.css", "") : "";
    fetch(base + "search-index.json")
      .then(function(r) { return r.json(); })
      .then(function(data) { searchIndex = data; })
      .catch(function() { searchIndex = null; });
  })();

  if (searchInput && sidebarTree) {
    var originalExpanded = [];
    sidebarTree.querySelectorAll(".dir").forEach(function(dir) {
      if (dir.classList.contains("expanded")) originalExpanded.push(dir);
    });

    searchInput.addEventListener("input", function() {
      var query = this.value.toLowerCase().trim();
      var items = sidebarTree.querySelectorAll("li");

      if (query === "") {
        items.forEach(function(item) { item.classList.remove("hidden"); });
        sidebarTree.querySelectorAll(".dir").forEach(function(dir) {
          if (originalExpanded.indexOf(dir) !== -1) {
            dir.classList.add("expanded");
          } else {
            dir.classList.remove("expanded");
          }
        });
        return;
      }

      var matchingPaths = new Set();
      if (searchIndex) {
        searchIndex.forEach(function(entry) {
          var haystack = (entry.title + " " + entry.summary + " " + entry.content + " " + entry.path).toLowerCase();
          if (haystack.indexOf(query) !== -1) {
            matchingPaths.add(entry.path);
          }
        });
      }

      sidebarTree.querySelectorAll(".page").forEach(function(item) {
        var link = item.querySelector("a");
        if (!link) return;
        var text = link.textContent.toLowerCase();
        var href = link.getAttribute("href").toLowerCase();
        var relPath = href.replace(/^(\.\.\/)*/g, "");
        var match = text.indexOf(query) !== -1 || href.indexOf(query) !== -1 || matchingPaths.has(relPath);
        item.classList.toggle("hidden", !match);
      });

      Array.from(sidebarTree.querySelectorAll(".dir")).reverse().forEach(function(dir) {
        var hasVisible = dir.querySelectorAll("li.page:not(.hidden)").length > 0;
        dir.classList.toggle("hidden", !hasVisible);
        if (hasVisible) dir.classList.add("expanded");
      });
    });
  }

  // ===== Feedback widget =====
  var feedbackWidget = document.getElementById("feedback-widget");

  if (feedbackWidget) {
    var page = feedbackWidget.getAttribute("data-page");
    var followup = document.getElementById("feedback-followup");

    var yesButton = document.getElementById("feedback-yes");
    var noButton = document.getElementById("feedback-no");

    function sendFeedback(helpful, comment) {
      return api("POST", "/api/feedback", { page: page, helpful: helpful, comment: comment || "" });
    }

    function showThanks() {
      yesButton.disabled = true;
      noButton.disabled = true;
      followup.innerHTML = '<span class="feedback-thanks">Thanks for the feedback!</span>';
    }

    if (yesButton) {
      yesButton.addEventListener("click", function() {
        sendFeedback(true).then(showThanks).catch(showThanks);
      });
    }

    if (noButton) {
      noButton.addEventListener("click", function() {
        // A "No" gets a chance to say what was missing before it is sent.
        // The Yes button stays usable in case they change their mind.
        followup.innerHTML =
          '<textarea id="feedback-comment" placeholder="What was missing or unclear? (optional)"></textarea>' +
          '<br><button class="btn btn-small" id="feedback-send">Send</button>';
        document.getElementById("feedback-send").addEventListener("click", function() {
          var comment = document.getElementById("feedback-comment").value;
          sendFeedback(false, comment).then(showThanks).catch(showThanks);
        });
      });
    }
  }

  // ===== Quiz widget =====
  var quizWidget = document.getElementById("quiz-widget");

  if (quizWidget) {
    var topic = quizWidget.getAttribute("data-topic");
    var quizBody = document.getElementById("quiz-body");
    var startButton = document.getElementById("quiz-start");

    // Only show the widget when a question set actually exists for this
    // topic; pages without generated questions get no quiz section.
    api("GET", "/api/quiz/")
      .then(function(data) {
        var topics = data.topics || [];
        if (topics.indexOf(topic) === -1) quizWidget.remove();
      })
      .catch(function() { quizWidget.remove(); });

    function quizError(message) {
      quizBody.innerHTML = '<p class="quiz-error"></p>';
      quizBody.querySelector(".quiz-error").textContent = message;
    }

    function renderQuiz(questions) {
      var parts = [];
      questions.forEach(function(q, idx) {
        parts.push('<div class="quiz-question" data-question-id="' + q.question_id + '">');
        parts.push('<div class="quiz-question-text">' + (idx + 1) + '. </div>');
        ["A", "B", "C", "D"].forEach(function(letter) {
          if (!(letter in q.options)) return;
          parts.push('<label class="quiz-option" data-letter="' + letter + '">' +
            '<input type="radio" name="q' + q.question_id + '" value="' + letter + '">' +
            '<span class="quiz-option-text"></span></label>');
        });
        parts.push('</div>');
      });
      parts.push('<button class="btn btn-primary" id="quiz-submit">Submit answers</button>');
      quizBody.innerHTML = parts.join("");

      // Fill in the text nodes separately so question content is never
      // interpreted as HTML.
      quizBody.querySelectorAll(".quiz-question").forEach(function(el, idx) {
        var q = questions[idx];
        el.querySelector(".quiz-question-text").textContent = (idx + 1) + ". " + q.question;
        el.querySelectorAll(".quiz-option").forEach(function(opt) {
          var letter = opt.getAttribute("data-letter");
          opt.querySelector(".quiz-option-text").textContent = letter + ". " + q.options[letter];
        });
      });

      document.getElementById("quiz-submit").addEventListener("click", submitQuiz);
    }

    function submitQuiz() {
      var answers = {};
      quizBody.querySelectorAll(".quiz-question").forEach(function(el) {
        var id = el.getAttribute("data-question-id");
        var chosen = el.querySelector("input:checked");
        if (chosen) answers[id] = chosen.value;
      });

      if (Object.keys(answers).length === 0) {
        quizError("Pick at least one answer first.");
        return;
      }

      api("POST", "/api/quiz/" + topic + "/attempts", { answers: answers }, true)
        .then(showQuizResults)
        .catch(function(err) { quizError(err.message); });
    }

    function showQuizResults(result) {
      var byId = {};
      (result.results || []).forEach(function(r) { byId[r.question_id] = r; });

      quizBody.querySelectorAll(".quiz-question").forEach(function(el) {
        var id = parseInt(el.getAttribute("data-question-id"), 10);
        var graded = byId[id];
        if (!graded) return;
        el.querySelectorAll(".quiz-option").forEach(function(opt) {
          var letter = opt.getAttribute("data-letter");
          opt.querySelector("input").disabled = true;
          if (letter === graded.correct_answer) {
            opt.classList.add("correct-answer");
          } else if (letter === graded.given && !graded.correct) {
            opt.classList.add("wrong-answer");
          }
        });
      });

      var submit = document.getElementById("quiz-submit");
      if (submit) submit.remove();

      var scoreLine = document.createElement("p");
      scoreLine.className = "quiz-result";
      scoreLine.textContent = "You scored " + result.score + " out of " + result.total + ".";
      quizBody.appendChild(scoreLine);
    }

    if (startButton) {
      startButton.addEventListener("click", function() {
        startButton.disabled = true;
        api("GET", "/api/quiz/" + topic + "?limit=10")
          .then(function(data) {
            startButton.remove();
            renderQuiz(data.questions || []);
          })
          .catch(function(err) {
            startButton.disabled = false;
            quizError(err.message);
          });
      });
    }
  }

  // ===== Login form =====
  var loginForm = document.getElementById("login-form");

  if (loginForm) {
    loginForm.addEventListener("submit", function(e) {
      e.preventDefault();
      hideBanner("error-banner");
      api("POST", "/auth/login", {
        username: document.getElementById("login-identity").value,
        password: document.getElementById("login-password").value
      }).then(function(session) {
        storeSession(session.user, session.accessToken);
        var target = storageGet(REDIRECT_KEY) || "/";
        storageRemove(REDIRECT_KEY);
        window.location.href = target;
      }).catch(function(err) {
        showBanner("error-banner", err.message);
      });
    });
  }

  // ===== Register form =====
  var registerForm = document.getElementById("register-form");

  if (registerForm) {
    registerForm.addEventListener("submit", function(e) {
      e.preventDefault();
      hideBanner("error-banner");
      api("POST", "/auth/register", {
        name: document.getElementById("register-name").value,
        username: document.getElementById("register-username").value,
        email: document.getElementById("register-email").value,
        password: document.getElementById("register-password").value
      }).then(function(session) {
        storeSession(session.user, session.accessToken);
        var target = storageGet(REDIRECT_KEY) || "/";
        storageRemove(REDIRECT_KEY);
        window.location.href = target;
      }).catch(function(err) {
        showBanner("error-banner", err.message);
      });
    });
  }

  // ===== Profile form =====
  var profileForm = document.getElementById("profile-form");

  if (profileForm) {
    var user = getUser();
    if (!user || !getToken()) {
      redirectToLogin();
      return;
    }

    document.getElementById("profile-name").value = user.name || "";
    document.getElementById("profile-username").value = user.username || "";
    document.getElementById("profile-email").value = user.email || "";

    profileForm.addEventListener("submit", function(e) {
      e.preventDefault();
      hideBanner("error-banner");
      hideBanner("success-banner");

      api("PATCH", "/users/" + user.id, {
        name: document.getElementById("profile-name").value,
        username: document.getElementById("profile-username").value,
        email: document.getElementById("profile-email").value
      }, true).then(function(updated) {
        storageSet(USER_KEY, JSON.stringify(updated));
        user = updated;
        renderAccountNav();
        showBanner("success-banner", "Profile saved.");
      }).catch(function(err) {
        if (err.status === 401) {
          redirectToLogin();
          return;
        }
        showBanner("error-banner", err.message);
      });
    });

    var logoutButton = document.getElementById("logout-button");
    if (logoutButton) {
      logoutButton.addEventListener("click", function() {
        clearSession();
        window.location.href = "/";
      });
    }
  }
})();
`

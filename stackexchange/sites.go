package stackexchange

import (
	"slices"

	"github.com/fwojciec/docsearch"
)

// sites lists the network sites users can name, keyed by identifier.
var sites = map[string]docsearch.Site{}

func init() {
	for _, s := range []docsearch.Site{
		{Name: "StackOverflow", APIParameter: "stackoverflow", Domain: "stackoverflow.com"},
		{Name: "ServerFault", APIParameter: "serverfault", Domain: "serverfault.com"},
		{Name: "SuperUser", APIParameter: "superuser", Domain: "superuser.com"},
		{Name: "MetaStackExchange", APIParameter: "meta", Domain: "meta.stackexchange.com"},
		{Name: "StackApps", APIParameter: "stackapps", Domain: "stackapps.com"},
		{Name: "AskUbuntu", APIParameter: "askubuntu", Domain: "askubuntu.com"},
		{Name: "MathOverflow", APIParameter: "mathoverflow.net", Domain: "mathoverflow.net"},
		{Name: "Mathematics", APIParameter: "math", Domain: "math.stackexchange.com"},
		{Name: "CrossValidated", APIParameter: "stats", Domain: "stats.stackexchange.com"},
		{Name: "Unix", APIParameter: "unix", Domain: "unix.stackexchange.com"},
		{Name: "CodeReview", APIParameter: "codereview", Domain: "codereview.stackexchange.com"},
		{Name: "CodeGolf", APIParameter: "codegolf", Domain: "codegolf.stackexchange.com"},
		{Name: "SoftwareEngineering", APIParameter: "softwareengineering", Domain: "softwareengineering.stackexchange.com"},
		{Name: "ComputerScience", APIParameter: "cs", Domain: "cs.stackexchange.com"},
		{Name: "TheoreticalComputerScience", APIParameter: "cstheory", Domain: "cstheory.stackexchange.com"},
		{Name: "DataScience", APIParameter: "datascience", Domain: "datascience.stackexchange.com"},
		{Name: "DatabaseAdministrators", APIParameter: "dba", Domain: "dba.stackexchange.com"},
		{Name: "InformationSecurity", APIParameter: "security", Domain: "security.stackexchange.com"},
		{Name: "Cryptography", APIParameter: "crypto", Domain: "crypto.stackexchange.com"},
		{Name: "ReverseEngineering", APIParameter: "reverseengineering", Domain: "reverseengineering.stackexchange.com"},
		{Name: "NetworkEngineering", APIParameter: "networkengineering", Domain: "networkengineering.stackexchange.com"},
		{Name: "DevOps", APIParameter: "devops", Domain: "devops.stackexchange.com"},
		{Name: "WebApplications", APIParameter: "webapps", Domain: "webapps.stackexchange.com"},
		{Name: "Webmasters", APIParameter: "webmasters", Domain: "webmasters.stackexchange.com"},
		{Name: "WordPress", APIParameter: "wordpress", Domain: "wordpress.stackexchange.com"},
		{Name: "GameDevelopment", APIParameter: "gamedev", Domain: "gamedev.stackexchange.com"},
		{Name: "Gaming", APIParameter: "gaming", Domain: "gaming.stackexchange.com"},
		{Name: "Emacs", APIParameter: "emacs", Domain: "emacs.stackexchange.com"},
		{Name: "Vi", APIParameter: "vi", Domain: "vi.stackexchange.com"},
		{Name: "TeX", APIParameter: "tex", Domain: "tex.stackexchange.com"},
		{Name: "Android", APIParameter: "android", Domain: "android.stackexchange.com"},
		{Name: "AskDifferent", APIParameter: "apple", Domain: "apple.stackexchange.com"},
		{Name: "RaspberryPi", APIParameter: "raspberrypi", Domain: "raspberrypi.stackexchange.com"},
		{Name: "Arduino", APIParameter: "arduino", Domain: "arduino.stackexchange.com"},
		{Name: "Electronics", APIParameter: "electronics", Domain: "electronics.stackexchange.com"},
		{Name: "Blender", APIParameter: "blender", Domain: "blender.stackexchange.com"},
		{Name: "GIS", APIParameter: "gis", Domain: "gis.stackexchange.com"},
		{Name: "Bitcoin", APIParameter: "bitcoin", Domain: "bitcoin.stackexchange.com"},
		{Name: "Physics", APIParameter: "physics", Domain: "physics.stackexchange.com"},
		{Name: "Chemistry", APIParameter: "chemistry", Domain: "chemistry.stackexchange.com"},
		{Name: "Biology", APIParameter: "biology", Domain: "biology.stackexchange.com"},
		{Name: "Quant", APIParameter: "quant", Domain: "quant.stackexchange.com"},
		{Name: "EnglishLanguageAndUsage", APIParameter: "english", Domain: "english.stackexchange.com"},
		{Name: "Academia", APIParameter: "academia", Domain: "academia.stackexchange.com"},
		{Name: "Workplace", APIParameter: "workplace", Domain: "workplace.stackexchange.com"},
		{Name: "PersonalFinance", APIParameter: "money", Domain: "money.stackexchange.com"},
		{Name: "Law", APIParameter: "law", Domain: "law.stackexchange.com"},
		{Name: "Travel", APIParameter: "travel", Domain: "travel.stackexchange.com"},
		{Name: "Cooking", APIParameter: "cooking", Domain: "cooking.stackexchange.com"},
		{Name: "HomeImprovement", APIParameter: "diy", Domain: "diy.stackexchange.com"},
		{Name: "Photography", APIParameter: "photo", Domain: "photo.stackexchange.com"},
		{Name: "Music", APIParameter: "music", Domain: "music.stackexchange.com"},
		{Name: "Movies", APIParameter: "movies", Domain: "movies.stackexchange.com"},
		{Name: "ScienceFiction", APIParameter: "scifi", Domain: "scifi.stackexchange.com"},
	} {
		sites[s.Name] = s
	}
}

// LookupSite resolves a site identifier. Matching is exact and
// case-sensitive; unknown identifiers yield *docsearch.UnknownSiteError.
func LookupSite(name string) (docsearch.Site, error) {
	site, ok := sites[name]
	if !ok {
		return docsearch.Site{}, &docsearch.UnknownSiteError{Site: name}
	}
	return site, nil
}

// SiteNames returns all known site identifiers in sorted order.
func SiteNames() []string {
	names := make([]string, 0, len(sites))
	for name := range sites {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

package main

import (
	"fmt"
	"strconv"

	"github.com/omeyang/xmackit/pkg/util/xjson"
	"github.com/omeyang/xmackit/pkg/util/xmac"
	"github.com/omeyang/xmackit/pkg/util/xqs"
)

// 输出格式。
const (
	formatText  = "text"
	formatJSON  = "json"
	formatQuery = "query"
)

// report 是命令结果。JSON 输出直接序列化 report 本身。
type report interface {
	lines() []string
	query() (string, error)
}

func render(e *env, r report) error {
	switch e.settings.Output.Format {
	case formatJSON:
		return xjson.Write(e.out, r, e.settings.Output.Pretty)
	case formatQuery:
		q, err := r.query()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.out, q)
		return err
	default:
		for _, line := range r.lines() {
			if _, err := fmt.Fprintln(e.out, line); err != nil {
				return err
			}
		}
		return nil
	}
}

type validItem struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type validReport struct {
	Results []validItem `json:"results"`
}

func (r *validReport) lines() []string {
	out := make([]string, len(r.Results))
	for i, it := range r.Results {
		out[i] = it.Input + "\t" + validWord(it.Valid)
	}
	return out
}

// query 保持输入顺序，同一地址出现多次时原样重复。
func (r *validReport) query() (string, error) {
	pairs := make([][2]string, len(r.Results))
	for i, it := range r.Results {
		pairs[i] = [2]string{it.Input, validWord(it.Valid)}
	}
	return xqs.FromPairs(pairs), nil
}

func validWord(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}

type parseReport struct {
	Input     string `json:"input" url:"input"`
	MAC       string `json:"mac" url:"mac"`
	Canonical string `json:"canonical" url:"canonical"`
	Ordinal   uint64 `json:"ordinal" url:"ordinal"`
	Unicast   bool   `json:"unicast" url:"unicast"`
	Local     bool   `json:"local" url:"local"`
	OUI       string `json:"oui" url:"oui"`
}

func newParseReport(input string, a xmac.Addr, style xmac.Style) *parseReport {
	text := a.FormatString(style)
	return &parseReport{
		Input:     input,
		MAC:       text,
		Canonical: xmac.Format(a),
		Ordinal:   a.Uint64(),
		Unicast:   a.IsUnicast(),
		Local:     a.IsLocallyAdministered(),
		OUI:       text[:ouiLen(style)],
	}
}

// ouiLen 返回前三个八位组在给定风格下的文本长度。
func ouiLen(style xmac.Style) int {
	switch style {
	case xmac.StyleDot, xmac.StyleDotUpper:
		return 7 // aabb.cc
	case xmac.StyleBare, xmac.StyleBareUpper:
		return 6
	default:
		return 8
	}
}

func (r *parseReport) lines() []string {
	cast := "multicast"
	if r.Unicast {
		cast = "unicast"
	}
	admin := "universal"
	if r.Local {
		admin = "local"
	}
	return []string{
		"mac:       " + r.MAC,
		"canonical: " + r.Canonical,
		"ordinal:   " + strconv.FormatUint(r.Ordinal, 10),
		"cast:      " + cast,
		"admin:     " + admin,
		"oui:       " + r.OUI,
	}
}

func (r *parseReport) query() (string, error) { return xqs.FromStruct(r) }

type countReport struct {
	From  string `json:"from" url:"from"`
	To    string `json:"to" url:"to"`
	Count uint64 `json:"count" url:"count"`
}

func (r *countReport) lines() []string {
	return []string{strconv.FormatUint(r.Count, 10)}
}

func (r *countReport) query() (string, error) { return xqs.FromStruct(r) }

type listReport struct {
	From  string   `json:"from" url:"from"`
	To    string   `json:"to" url:"to"`
	Count uint64   `json:"count" url:"count"`
	Addrs []string `json:"addrs" url:"addr"`
}

func (r *listReport) lines() []string { return r.Addrs }

func (r *listReport) query() (string, error) { return xqs.FromStruct(r) }

type ordinalReport struct {
	Ordinal uint64 `json:"ordinal" url:"ordinal"`
	MAC     string `json:"mac" url:"mac"`
}

func (r *ordinalReport) lines() []string { return []string{r.MAC} }

func (r *ordinalReport) query() (string, error) { return xqs.FromStruct(r) }

